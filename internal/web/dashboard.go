package web

import (
	"cmp"
	"context"
	"net/http"
	"slices"
	"sync"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

const recentIncidentCount = 5

type ChartBar struct {
	Type     string
	Quantity int
	Percent  int // Relative to the largest bar
}

func chartBars(qs []model.ResourceQuantity) []ChartBar {
	peak := 0
	for _, q := range qs {
		peak = max(peak, q.Quantity)
	}
	out := make([]ChartBar, len(qs))
	for i, q := range qs {
		out[i] = ChartBar{Type: q.Type, Quantity: q.Quantity}
		if peak > 0 {
			out[i].Percent = q.Quantity * 100 / peak
		}
	}
	return out
}

// recentIncidents returns the n newest incidents, newest first.
func recentIncidents(incidents []model.Incident, n int) []model.Incident {
	out := slices.Clone(incidents)
	slices.SortFunc(out, func(a, b model.Incident) int { return cmp.Compare(b.ID, a.ID) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

type dashboardData struct {
	Stats     model.DashboardStats
	Recent    Table
	Available []ChartBar
	Requested []ChartBar
}

type dashboardController struct {
	api *client.Client
}

func newDashboardController(_ *http.Request, api *client.Client) PageController {
	return &dashboardController{api: api}
}

// Load fetches the four dashboard panels concurrently. A failing panel is
// rendered empty with a toast; the page itself always loads.
func (c *dashboardController) Load(ctx context.Context, _ *session.Context) (*Page, error) {
	var (
		wg                   sync.WaitGroup
		stats                *model.DashboardStats
		incidents            []model.Incident
		available, requested []model.ResourceQuantity
		errs                 [4]error
	)
	wg.Add(4)
	go func() { defer wg.Done(); stats, errs[0] = c.api.DashboardStats(ctx) }()
	go func() { defer wg.Done(); incidents, errs[1] = c.api.ListIncidents(ctx) }()
	go func() { defer wg.Done(); available, errs[2] = c.api.AvailableResources(ctx) }()
	go func() { defer wg.Done(); requested, errs[3] = c.api.RequestedResources(ctx) }()
	wg.Wait()

	data := dashboardData{}
	page := &Page{Template: "dashboard.html", Title: "Dashboard", Active: "/", Data: &data}
	if errs[0] != nil {
		page.toast("Failed to load dashboard statistics")
	} else {
		data.Stats = *stats
	}
	if errs[1] != nil {
		page.toast("Failed to load recent incidents")
	}
	data.Recent = Project(recentIncidents(incidents, recentIncidentCount), incidentColumns, incidentID)
	if errs[2] != nil || errs[3] != nil {
		page.toast("Failed to load resource charts")
	}
	data.Available = chartBars(available)
	data.Requested = chartBars(requested)
	return page, nil
}

func (c *dashboardController) Dispose() { c.api = nil }
