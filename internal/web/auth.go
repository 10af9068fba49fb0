package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type authData struct {
	Roles []model.Role
}

func (a *App) loginPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, session.FromContext(r.Context()), http.StatusOK,
		&Page{Template: "login.html", Title: "Login", Data: &authData{Roles: model.Roles}})
}

// login checks the form against the directory, then asks the API for a
// bearer token. The dashboard still works without one, since the API only
// requires tokens when enforcement is on.
func (a *App) login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	role := model.Role(r.PostFormValue("role"))

	s, err := a.auth.Login(username, password, role)
	if err != nil {
		a.flashes.add(w, r, flashError, session.Message(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if resp, err := a.api.Login(r.Context(), username, password, role); err != nil {
		slog.Warn("API login failed, continuing without a token", "username", username, "error", err)
	} else {
		s.Token = resp.Token
	}

	if err := a.sessions.Start(w, r, s); err != nil {
		slog.Error("Failed to save session", "username", username, "error", err)
		a.flashes.add(w, r, flashError, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	slog.Info("User logged in", "username", s.Username, "role", s.Role)
	a.flashes.add(w, r, flashSuccess, "Welcome, "+s.FullName+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) logout(w http.ResponseWriter, r *http.Request) {
	sc := session.FromContext(r.Context())
	if sc.Authenticated() && sc.Session.Token != "" {
		if err := a.clientFor(sc).Logout(r.Context()); err != nil {
			slog.Warn("API logout failed", "username", sc.Session.Username, "error", err)
		}
	}
	if err := a.sessions.End(w, r); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	a.flashes.add(w, r, flashInfo, "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (a *App) registerPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, session.FromContext(r.Context()), http.StatusOK,
		&Page{Template: "register.html", Title: "Register", Data: &authData{Roles: model.Roles}})
}

// register validates a sign-up. Accounts live in the directory file, so a
// valid registration is acknowledged and nothing more.
func (a *App) register(w http.ResponseWriter, r *http.Request) {
	reg := session.Registration{
		FullName:        strings.TrimSpace(r.PostFormValue("full_name")),
		Username:        strings.TrimSpace(r.PostFormValue("username")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Phone:           strings.TrimSpace(r.PostFormValue("phone")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		Role:            model.Role(r.PostFormValue("role")),
	}
	u, err := a.auth.Register(reg)
	if err != nil {
		a.flashes.add(w, r, flashError, session.Message(err))
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	slog.Info("Registration received", "username", u.Username, "role", u.Role)
	a.flashes.add(w, r, flashSuccess, "Registration successful! Please wait for admin approval.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
