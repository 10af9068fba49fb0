package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type CampHandler struct {
	campService *service.CampService
}

func NewCampHandler(s *service.CampService) *CampHandler {
	return &CampHandler{campService: s}
}

func (h *CampHandler) RegisterRoutes(r chi.Router, guard Guard) {
	r.With(guard(model.PermViewCamps, model.PermManageCamps, model.PermUpdateCamps)).Get("/", h.listCamps)
	r.With(guard(model.PermViewCamps, model.PermManageCamps, model.PermUpdateCamps)).Get("/{id}", h.getCamp)
	r.With(guard(model.PermManageCamps)).Post("/", h.createCamp)
}

func (h *CampHandler) listCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := h.campService.List(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, camps)
}

func (h *CampHandler) getCamp(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		common.RespondWithServiceError(w, common.NotFound("Camp"))
		return
	}
	camp, err := h.campService.Get(r.Context(), id)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, camp)
}

func (h *CampHandler) createCamp(w http.ResponseWriter, r *http.Request) {
	var camp model.Camp
	if !decodeBody(w, r, &camp) {
		return
	}
	created, err := h.campService.Create(r.Context(), &camp)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, created)
}
