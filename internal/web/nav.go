package web

import (
	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type NavItem struct {
	Label      string
	Path       string
	Permission model.Permission // Empty means always shown
	Active     bool
}

var navItems = []NavItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Incidents", Path: "/incidents", Permission: model.PermReportIncident},
	{Label: "Relief Camps", Path: "/camps", Permission: model.PermViewCamps},
	{Label: "Donors", Path: "/donors", Permission: model.PermViewDonations},
	{Label: "Requests", Path: "/requests", Permission: model.PermViewRequests},
	{Label: "Users", Path: "/users", Permission: model.PermManageUsers},
}

// visibleNav returns the navigation items sc may see, marking the one for
// active.
func visibleNav(sc *session.Context, active string) []NavItem {
	out := []NavItem{}
	for _, item := range navItems {
		if item.Permission != "" && !sc.HasPermission(item.Permission) {
			continue
		}
		item.Active = item.Path == active
		out = append(out, item)
	}
	return out
}
