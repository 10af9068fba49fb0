package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/RJohnPaul/dms/internal/api/handler"
	"github.com/RJohnPaul/dms/internal/api/middleware"
	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/common/security"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type Services struct {
	Auth      *service.AuthService
	Incident  *service.IncidentService
	Camp      *service.CampService
	Donor     *service.DonorService
	Request   *service.RequestService
	Resource  *service.ResourceService
	Dashboard *service.DashboardService
}

// NewRouter builds the Resource API. Unless enforcePermissions is set, the
// entity routes are open to anyone; only the token routes under /api/auth
// ever check a token.
func NewRouter(s Services, enforcePermissions bool) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifier only records the token (or its absence) in the context.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	authenticated := middleware.Authenticator(s.Auth)
	guard := handler.Guard(handler.OpenGuard)
	if enforcePermissions {
		guard = func(perms ...model.Permission) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler {
				return authenticated(middleware.RequirePermission(perms...)(next))
			}
		}
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithMessage(w, http.StatusOK, "Welcome to the Incident Management System API.")
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			handler.NewAuthHandler(s.Auth).RegisterRoutes(ar, authenticated)
		})

		incidentHandler := handler.NewIncidentHandler(s.Incident)
		api.Route("/incidents", func(ir chi.Router) { incidentHandler.RegisterRoutes(ir, guard) })

		campHandler := handler.NewCampHandler(s.Camp)
		api.Route("/camps", func(cr chi.Router) { campHandler.RegisterRoutes(cr, guard) })

		donorHandler := handler.NewDonorHandler(s.Donor)
		api.Route("/donors", func(dr chi.Router) { donorHandler.RegisterRoutes(dr, guard) })

		requestHandler := handler.NewRequestHandler(s.Request)
		api.Route("/requests", func(rr chi.Router) { requestHandler.RegisterRoutes(rr, guard) })

		handler.NewResourceHandler(s.Resource).RegisterRoutes(api, guard)

		dashboardHandler := handler.NewDashboardHandler(s.Dashboard)
		api.Route("/dashboard", func(dr chi.Router) { dashboardHandler.RegisterRoutes(dr, guard) })
	})

	return r
}
