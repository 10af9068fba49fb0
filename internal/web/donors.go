package web

import (
	"context"
	"net/http"
	"time"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

var donorStatuses = []string{model.DonorStatusReceived, model.DonorStatusInTransit, model.DonorStatusPending}

type donorsData struct {
	Table    Table
	Statuses []string
}

type donorsController struct {
	api   *client.Client
	query string
}

func newDonorsController(r *http.Request, api *client.Client) PageController {
	return &donorsController{api: api, query: r.URL.Query().Get("q")}
}

func (c *donorsController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	donors, err := c.api.ListDonors(ctx)
	if err != nil {
		return nil, failed("Failed to load donors", err)
	}
	return &Page{
		Template: "donors.html",
		Title:    "Donors",
		Active:   "/donors",
		Export:   "donors",
		Data: &donorsData{
			Table:    Project(donors, donorColumns, donorID).Filter(c.query),
			Statuses: donorStatuses,
		},
	}, nil
}

func (c *donorsController) Dispose() { c.api = nil }

type donorData struct {
	Donor *model.Donor
	Date  string
}

type donorController struct {
	api *client.Client
	id  int64
	err error
}

func newDonorController(r *http.Request, api *client.Client) PageController {
	id, err := pathID(r)
	return &donorController{api: api, id: id, err: err}
}

func (c *donorController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	if c.err != nil {
		return nil, failed("Donor not found", c.err)
	}
	donor, err := c.api.GetDonor(ctx, c.id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, failed("Donor not found", err)
		}
		return nil, failed("Failed to load donor details", err)
	}
	return &Page{
		Template: "donor.html",
		Title:    display(donor.Name),
		Active:   "/donors",
		Data:     &donorData{Donor: donor, Date: formatDateString(donor.DonationDate)},
	}, nil
}

func (c *donorController) Dispose() { c.api = nil }

func (a *App) createDonor(w http.ResponseWriter, r *http.Request) {
	f := newForm(r)
	in := &model.Donor{
		Name:         strPtr(f.required("name")),
		Email:        strPtr(f.required("email")),
		Phone:        f.optional("phone"),
		DonationType: strPtr(f.required("donation_type")),
		DonationDate: strPtr(time.Now().UTC().Format(time.RFC3339)),
		Status:       strPtr(f.required("status")),
	}
	a.submit(w, r, f, "/donors", "Donor added successfully", "Failed to add donor",
		func(ctx context.Context, api *client.Client) error {
			_, err := api.CreateDonor(ctx, in)
			return err
		})
}
