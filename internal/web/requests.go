package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type requestsData struct {
	Table      Table
	Camps      []model.Camp
	Resources  []model.Resource
	Priorities []string
}

type requestsController struct {
	api   *client.Client
	query string
}

func newRequestsController(r *http.Request, api *client.Client) PageController {
	return &requestsController{api: api, query: r.URL.Query().Get("q")}
}

func (c *requestsController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	requests, err := c.api.ListRequests(ctx)
	if err != nil {
		return nil, failed("Failed to load requests", err)
	}
	page := &Page{Template: "requests.html", Title: "Requests", Active: "/requests", Export: "requests"}
	camps, err := c.api.ListCamps(ctx)
	if err != nil {
		page.toast("Failed to load relief camps")
	}
	page.Data = &requestsData{
		Table:      markApprovable(Project(requests, requestColumns, requestID), requests).Filter(c.query),
		Camps:      camps,
		Resources:  catalog(ctx, c.api),
		Priorities: priorities,
	}
	return page, nil
}

func (c *requestsController) Dispose() { c.api = nil }

type requestData struct {
	Request    *model.ReliefRequest
	Created    string
	CanApprove bool
}

type requestController struct {
	api *client.Client
	id  int64
	err error
}

func newRequestController(r *http.Request, api *client.Client) PageController {
	id, err := pathID(r)
	return &requestController{api: api, id: id, err: err}
}

func (c *requestController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	if c.err != nil {
		return nil, failed("Request not found", c.err)
	}
	req, err := c.api.GetRequest(ctx, c.id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, failed("Request not found", err)
		}
		return nil, failed("Failed to load request details", err)
	}
	return &Page{
		Template: "request.html",
		Title:    "Request #" + strconv.FormatInt(req.ID, 10),
		Active:   "/requests",
		Data: &requestData{
			Request:    req,
			Created:    display(req.CreatedAt),
			CanApprove: req.Status != nil && *req.Status == model.RequestStatusPending,
		},
	}, nil
}

func (c *requestController) Dispose() { c.api = nil }

func (a *App) createRequest(w http.ResponseWriter, r *http.Request) {
	f := newForm(r)
	in := &model.ReliefRequest{
		CampID:     model.IDPtr(int64(f.number("camp_id"))),
		ResourceID: model.IDPtr(int64(f.number("resource_id"))),
		Quantity:   intPtr(f.number("quantity")),
		Priority:   strPtr(f.required("priority")),
		Status:     strPtr(model.RequestStatusPending),
		Notes:      f.optional("notes"),
	}
	a.submit(w, r, f, "/requests", "Request submitted successfully", "Failed to submit request",
		func(ctx context.Context, api *client.Client) error {
			_, err := api.CreateRequest(ctx, in)
			return err
		})
}

// approveRequest marks a request fulfilled and returns to the page the
// approve button was on.
func (a *App) approveRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	a.submit(w, r, newForm(r), returnPath(r, "/requests"), "Request approved successfully", "Failed to approve request",
		func(ctx context.Context, api *client.Client) error {
			_, err := api.UpdateRequestStatus(ctx, id, model.RequestStatusFulfilled)
			return err
		})
}
