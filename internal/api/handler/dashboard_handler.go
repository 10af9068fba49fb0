package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(s *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: s}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router, guard Guard) {
	r.With(guard()).Get("/stats", h.stats)
}

func (h *DashboardHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, stats)
}
