package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type usersController struct {
	directory *session.Directory
}

func (a *App) newUsersController(_ *http.Request, _ *client.Client) PageController {
	return &usersController{directory: a.auth.Directory()}
}

func (c *usersController) Load(_ context.Context, _ *session.Context) (*Page, error) {
	return &Page{Template: "users.html", Title: "Users", Active: "/users", Data: c.directory.Users}, nil
}

func (c *usersController) Dispose() { c.directory = nil }

// reviewUser answers the approve and reject buttons. The directory is
// read-only, so the decision is acknowledged but not stored.
func (a *App) reviewUser(approve bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer http.Redirect(w, r, "/users", http.StatusSeeOther)

		sc := session.FromContext(r.Context())
		if !sc.HasPermission(model.PermApproveUsers) {
			a.flashes.add(w, r, flashError, "Insufficient permissions")
			return
		}
		u, ok := a.auth.Directory().FindUser(chi.URLParam(r, "username"))
		if !ok {
			a.flashes.add(w, r, flashError, "User not found")
			return
		}
		if u.Status != model.UserStatusPending {
			a.flashes.add(w, r, flashInfo, "User is already active")
			return
		}
		if approve {
			a.flashes.add(w, r, flashSuccess, "User approved successfully")
			return
		}
		a.flashes.add(w, r, flashInfo, "User rejected")
	}
}
