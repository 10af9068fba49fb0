package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
)

// ResourceHandler serves the supply catalog, the vehicle listing and the
// two resource charts.
type ResourceHandler struct {
	resourceService *service.ResourceService
}

func NewResourceHandler(s *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: s}
}

func (h *ResourceHandler) RegisterRoutes(r chi.Router, guard Guard) {
	r.With(guard()).Get("/resources", h.listResources)
	r.With(guard()).Get("/resources/available", h.available)
	r.With(guard()).Get("/resources/requested", h.requested)
	r.With(guard()).Get("/vehicles", h.listVehicles)
}

func (h *ResourceHandler) listResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceService.ListResources(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resources)
}

func (h *ResourceHandler) available(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, h.resourceService.Available())
}

func (h *ResourceHandler) requested(w http.ResponseWriter, r *http.Request) {
	totals, err := h.resourceService.Requested(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, totals)
}

func (h *ResourceHandler) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.resourceService.ListVehicles(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, vehicles)
}
