package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/api/middleware"
	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts login publicly and the token-bound routes behind
// authenticated, which must verify the bearer token.
func (h *AuthHandler) RegisterRoutes(r chi.Router, authenticated func(http.Handler) http.Handler) {
	r.Post("/login", h.login)
	r.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.Post("/logout", h.logout)
		r.Get("/me", h.me)
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaimsFromContext(r.Context())
	if err := h.authService.Logout(r.Context(), claims); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Logged out")
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaimsFromContext(r.Context())
	sess, err := h.authService.Me(claims)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, sess)
}
