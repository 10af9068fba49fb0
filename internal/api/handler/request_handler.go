package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type RequestHandler struct {
	requestService *service.RequestService
}

func NewRequestHandler(s *service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: s}
}

func (h *RequestHandler) RegisterRoutes(r chi.Router, guard Guard) {
	read := guard(model.PermViewRequests, model.PermManageRequests, model.PermRequestAid)
	r.With(read).Get("/", h.listRequests)
	r.With(read).Get("/{id}", h.getRequest)
	r.With(guard(model.PermRequestAid, model.PermManageRequests, model.PermUpdateCamps)).Post("/", h.createRequest)
	r.With(guard(model.PermManageRequests)).Put("/{id}/status", h.updateStatus)
}

func (h *RequestHandler) listRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.List(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) getRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		common.RespondWithServiceError(w, common.NotFound("Request"))
		return
	}
	req, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) createRequest(w http.ResponseWriter, r *http.Request) {
	var req model.ReliefRequest
	if !decodeBody(w, r, &req) {
		return
	}
	created, err := h.requestService.Create(r.Context(), &req)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *RequestHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		common.RespondWithServiceError(w, common.NotFound("Request"))
		return
	}
	var body model.StatusUpdate
	if !decodeBody(w, r, &body) {
		return
	}
	updated, err := h.requestService.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, updated)
}
