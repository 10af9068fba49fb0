package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type IncidentHandler struct {
	incidentService *service.IncidentService
}

func NewIncidentHandler(s *service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: s}
}

func (h *IncidentHandler) RegisterRoutes(r chi.Router, guard Guard) {
	r.With(guard(model.PermReportIncident, model.PermViewReports)).Get("/", h.listIncidents)
	r.With(guard(model.PermReportIncident, model.PermViewReports)).Get("/{id}", h.getIncident)
	r.With(guard(model.PermReportIncident)).Post("/", h.createIncident)
}

func (h *IncidentHandler) listIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.incidentService.List(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, incidents)
}

func (h *IncidentHandler) getIncident(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		common.RespondWithServiceError(w, common.NotFound("Incident"))
		return
	}
	incident, err := h.incidentService.Get(r.Context(), id)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, incident)
}

func (h *IncidentHandler) createIncident(w http.ResponseWriter, r *http.Request) {
	var in model.Incident
	if !decodeBody(w, r, &in) {
		return
	}
	created, err := h.incidentService.Create(r.Context(), &in)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, created)
}
