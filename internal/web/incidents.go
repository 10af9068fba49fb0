package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

var severities = []string{model.SeverityHigh, model.SeverityMedium, model.SeverityLow}

type incidentsData struct {
	Table      Table
	Camps      []model.Camp // Choices for the report form
	Severities []string
}

type incidentsController struct {
	api   *client.Client
	query string
}

func newIncidentsController(r *http.Request, api *client.Client) PageController {
	return &incidentsController{api: api, query: r.URL.Query().Get("q")}
}

func (c *incidentsController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	incidents, err := c.api.ListIncidents(ctx)
	if err != nil {
		return nil, failed("Failed to load incidents", err)
	}
	page := &Page{Template: "incidents.html", Title: "Incidents", Active: "/incidents", Export: "incidents"}
	camps, err := c.api.ListCamps(ctx)
	if err != nil {
		page.toast("Failed to load relief camps")
	}
	page.Data = &incidentsData{
		Table:      Project(incidents, incidentColumns, incidentID).Filter(c.query),
		Camps:      camps,
		Severities: severities,
	}
	return page, nil
}

func (c *incidentsController) Dispose() { c.api = nil }

type incidentController struct {
	api *client.Client
	id  int64
	err error
}

func newIncidentController(r *http.Request, api *client.Client) PageController {
	id, err := pathID(r)
	return &incidentController{api: api, id: id, err: err}
}

func (c *incidentController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	if c.err != nil {
		return nil, failed("Incident not found", c.err)
	}
	incident, err := c.api.GetIncident(ctx, c.id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, failed("Incident not found", err)
		}
		return nil, failed("Failed to load incident details", err)
	}
	return &Page{
		Template: "incident.html",
		Title:    "Incident #" + strconv.FormatInt(incident.ID, 10),
		Active:   "/incidents",
		Data:     incident,
	}, nil
}

func (c *incidentController) Dispose() { c.api = nil }

func (a *App) createIncident(w http.ResponseWriter, r *http.Request) {
	f := newForm(r)
	in := &model.Incident{
		Description:     strPtr(f.required("description")),
		Severity:        strPtr(f.required("severity")),
		ReportedBy:      strPtr(f.required("reported_by")),
		Status:          strPtr(model.IncidentStatusActive),
		NeedsMedical:    boolPtr(f.checkbox("needs_medical")),
		NeedsEvacuation: boolPtr(f.checkbox("needs_evacuation")),
	}
	in.CampID = model.IDPtr(int64(f.number("camp_id")))
	a.submit(w, r, f, "/incidents", "Incident reported successfully", "Failed to report incident",
		func(ctx context.Context, api *client.Client) error {
			_, err := api.CreateIncident(ctx, in)
			return err
		})
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
