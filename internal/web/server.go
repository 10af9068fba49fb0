// Package web renders the relief dashboard: server-side pages backed by the
// client data access layer, gated by the logged-in session.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
)

const (
	sessionCookie = "relief_session"
	flashCookie   = "relief_flash"
)

type Options struct {
	Client        *client.Client
	Authenticator *session.Authenticator
	Store         sessions.Store
	CSRFKey       []byte // Empty disables CSRF protection
	CookieSecure  bool
}

// App holds what the page controllers and form actions share.
type App struct {
	api       *client.Client
	auth      *session.Authenticator
	sessions  *session.Manager
	flashes   *flashes
	templates *templateSet
}

// clientFor returns the API client carrying sc's bearer token, if any.
func (a *App) clientFor(sc *session.Context) *client.Client {
	if sc.Authenticated() && sc.Session.Token != "" {
		return a.api.WithToken(sc.Session.Token)
	}
	return a.api
}

func NewHandler(opts Options) (http.Handler, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	app := &App{
		api:       opts.Client,
		auth:      opts.Authenticator,
		sessions:  session.NewManager(session.NewCookieSlot(opts.Store, sessionCookie), "/login", "/", "/register"),
		flashes:   &flashes{store: opts.Store, name: flashCookie},
		templates: templates,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	if len(opts.CSRFKey) > 0 {
		if !opts.CookieSecure {
			r.Use(plaintext)
		}
		r.Use(csrf.Protect(opts.CSRFKey,
			csrf.Secure(opts.CookieSecure),
			csrf.Path("/"),
			csrf.SameSite(csrf.SameSiteLaxMode),
		))
	}
	r.Use(app.sessions.Middleware)

	r.Get("/login", app.loginPage)
	r.Post("/login", app.login)
	r.Get("/register", app.registerPage)
	r.Post("/register", app.register)
	r.Post("/logout", app.logout)

	pages := &Router{app: app, mux: r}
	pages.Page("/", newDashboardController)
	pages.Page("/incidents", newIncidentsController)
	pages.Page("/incidents/{id}", newIncidentController)
	pages.Page("/camps", newCampsController)
	pages.Page("/camps/{id}", newCampController)
	pages.Page("/donors", newDonorsController)
	pages.Page("/donors/{id}", newDonorController)
	pages.Page("/requests", newRequestsController)
	pages.Page("/requests/{id}", newRequestController)
	pages.Page("/users", app.newUsersController)

	r.Post("/incidents", app.createIncident)
	r.Post("/camps", app.createCamp)
	r.Post("/camps/{id}/requests", app.createCampRequest)
	r.Post("/donors", app.createDonor)
	r.Post("/requests", app.createRequest)
	r.Post("/requests/{id}/approve", app.approveRequest)
	r.Post("/users/{username}/approve", app.reviewUser(true))
	r.Post("/users/{username}/reject", app.reviewUser(false))
	r.Get("/export/{page}.csv", app.export)

	return r, nil
}

// plaintext tells the CSRF middleware the dashboard is served over plain
// HTTP, so it skips the TLS-only referer check.
func plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
