package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

var priorities = []string{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

// newCampResources is what a freshly added camp starts with.
const newCampResources = 100

type campsData struct {
	Cards   []CampCard
	Stats   CampStats
	Pending Table
}

type campsController struct {
	api   *client.Client
	query string
}

func newCampsController(r *http.Request, api *client.Client) PageController {
	return &campsController{api: api, query: r.URL.Query().Get("q")}
}

func (c *campsController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	camps, err := c.api.ListCamps(ctx)
	if err != nil {
		return nil, failed("Failed to load relief camps", err)
	}
	page := &Page{Template: "camps.html", Title: "Relief Camps", Active: "/camps", Export: "camps"}

	cards := make([]CampCard, len(camps))
	for i, camp := range camps {
		cards[i] = newCampCard(camp)
	}
	requests, err := c.api.ListRequests(ctx)
	if err != nil {
		page.toast("Failed to load pending requests")
	}
	pending := pendingRequests(requests)
	page.Data = &campsData{
		Cards:   filterCards(cards, c.query),
		Stats:   summarizeCamps(camps),
		Pending: markApprovable(Project(pending, requestColumns, requestID), pending),
	}
	return page, nil
}

func (c *campsController) Dispose() { c.api = nil }

func pendingRequests(requests []model.ReliefRequest) []model.ReliefRequest {
	out := []model.ReliefRequest{}
	for _, q := range requests {
		if q.Status != nil && *q.Status == model.RequestStatusPending {
			out = append(out, q)
		}
	}
	return out
}

type campData struct {
	Card       CampCard
	Requests   Table
	Resources  []model.Resource
	Priorities []string
}

type campController struct {
	api *client.Client
	id  int64
	err error
}

func newCampController(r *http.Request, api *client.Client) PageController {
	id, err := pathID(r)
	return &campController{api: api, id: id, err: err}
}

func (c *campController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	if c.err != nil {
		return nil, failed("Relief camp not found", c.err)
	}
	camp, err := c.api.GetCamp(ctx, c.id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, failed("Relief camp not found", err)
		}
		return nil, failed("Failed to load camp details", err)
	}
	page := &Page{Template: "camp.html", Title: display(camp.Name), Active: "/camps"}

	requests, err := c.api.ListRequests(ctx)
	if err != nil {
		page.toast("Failed to load requests")
	}
	var mine []model.ReliefRequest
	for _, q := range requests {
		if q.CampID != nil && int64(*q.CampID) == camp.ID {
			mine = append(mine, q)
		}
	}
	page.Data = &campData{
		Card:       newCampCard(*camp),
		Requests:   markApprovable(Project(mine, requestColumns, requestID), mine),
		Resources:  catalog(ctx, c.api),
		Priorities: priorities,
	}
	return page, nil
}

func (c *campController) Dispose() { c.api = nil }

// catalog lists the resources a request can be made for, falling back to the
// built-in catalog when the API cannot be reached.
func catalog(ctx context.Context, api *client.Client) []model.Resource {
	if resources, err := api.ListResources(ctx); err == nil && len(resources) > 0 {
		return resources
	}
	out := make([]model.Resource, len(model.DefaultResources))
	for i, name := range model.DefaultResources {
		out[i] = model.Resource{ID: int64(i + 1), Name: name}
	}
	return out
}

func (a *App) createCamp(w http.ResponseWriter, r *http.Request) {
	f := newForm(r)
	in := &model.Camp{
		Name:             strPtr(f.required("name")),
		Location:         strPtr(f.required("location")),
		Capacity:         intPtr(f.number("capacity")),
		CurrentOccupancy: intPtr(f.number("current_occupancy")),
		ContactPerson:    f.optional("contact_person"),
		ContactNumber:    f.optional("contact_number"),
		Resources: &model.CampResources{
			Food:    intPtr(newCampResources),
			Water:   intPtr(newCampResources),
			Medical: intPtr(newCampResources),
		},
		Status: strPtr("Active"),
	}
	a.submit(w, r, f, "/camps", "Relief camp added successfully", "Failed to add relief camp",
		func(ctx context.Context, api *client.Client) error {
			_, err := api.CreateCamp(ctx, in)
			return err
		})
}

// createCampRequest files a resource request from a camp's detail page.
func (a *App) createCampRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	f := newForm(r)
	in := &model.ReliefRequest{
		CampID:     model.IDPtr(id),
		ResourceID: model.IDPtr(int64(f.number("resource_id"))),
		Quantity:   intPtr(f.number("quantity")),
		Priority:   strPtr(f.required("priority")),
		Status:     strPtr(model.RequestStatusPending),
		Notes:      f.optional("notes"),
	}
	a.submit(w, r, f, "/camps/"+strconv.FormatInt(id, 10), "Resource request submitted successfully", "Failed to submit resource request",
		func(ctx context.Context, api *client.Client) error {
			_, err := api.CreateRequest(ctx, in)
			return err
		})
}
