package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type DonorHandler struct {
	donorService *service.DonorService
}

func NewDonorHandler(s *service.DonorService) *DonorHandler {
	return &DonorHandler{donorService: s}
}

func (h *DonorHandler) RegisterRoutes(r chi.Router, guard Guard) {
	r.With(guard(model.PermViewDonations, model.PermManageDonations)).Get("/", h.listDonors)
	r.With(guard(model.PermViewDonations, model.PermManageDonations)).Get("/{id}", h.getDonor)
	r.With(guard(model.PermManageDonations)).Post("/", h.createDonor)
}

func (h *DonorHandler) listDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := h.donorService.List(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, donors)
}

func (h *DonorHandler) getDonor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		common.RespondWithServiceError(w, common.NotFound("Donor"))
		return
	}
	donor, err := h.donorService.Get(r.Context(), id)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, donor)
}

func (h *DonorHandler) createDonor(w http.ResponseWriter, r *http.Request) {
	var in model.Donor
	if !decodeBody(w, r, &in) {
		return
	}
	created, err := h.donorService.Create(r.Context(), &in)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, created)
}
