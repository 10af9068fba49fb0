package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

// Page is what a controller hands to the renderer.
type Page struct {
	Template string
	Title    string
	Active   string // Nav path to highlight
	Export   string // Export name, empty when the page has no CSV export
	Data     any
	Toasts   []FlashMessage // Partial load failures
}

func (p *Page) toast(msg string) {
	p.Toasts = append(p.Toasts, FlashMessage{Type: flashError, Message: msg})
}

// PageController loads one page for one request. Dispose is called once the
// page has been rendered, whether or not Load succeeded.
type PageController interface {
	Load(ctx context.Context, sc *session.Context) (*Page, error)
	Dispose()
}

// ControllerFactory builds the controller for a matched route. api already
// carries the session's bearer token.
type ControllerFactory func(r *http.Request, api *client.Client) PageController

// loadError is a failed page load with the toast to show for it.
type loadError struct {
	Message string
	Err     error
}

func (e *loadError) Error() string { return e.Message + ": " + e.Err.Error() }
func (e *loadError) Unwrap() error { return e.Err }

func failed(msg string, err error) error {
	return &loadError{Message: msg, Err: err}
}

var errBadID = &client.APIError{Status: http.StatusNotFound, Message: "not found"}

// pathID reads the {id} route parameter. Non-numeric ids load as not found.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errBadID
	}
	return id, nil
}

type viewData struct {
	Title     string
	Session   *session.Session
	Nav       []NavItem
	Flashes   []FlashMessage
	CSRF      template.HTML
	Query     string
	Export    string
	CanExport bool
	Data      any
}

// Router maps routes to page controllers.
type Router struct {
	app *App
	mux chi.Router
}

func (rt *Router) Page(pattern string, f ControllerFactory) {
	rt.mux.Get(pattern, rt.app.servePage(f))
}

func (a *App) servePage(f ControllerFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc := session.FromContext(r.Context())
		ctrl := f(r, a.clientFor(sc))
		defer ctrl.Dispose()

		page, err := ctrl.Load(r.Context(), sc)
		if err != nil {
			a.renderLoadError(w, r, sc, err)
			return
		}
		a.render(w, r, sc, http.StatusOK, page)
	}
}

func (a *App) renderLoadError(w http.ResponseWriter, r *http.Request, sc *session.Context, err error) {
	msg := "Failed to load page"
	var le *loadError
	if errors.As(err, &le) {
		msg = le.Message
	}
	status := http.StatusInternalServerError
	if client.IsNotFound(err) {
		status = http.StatusNotFound
	}
	slog.Error("Page load failed", "path", r.URL.Path, "error", err)
	page := &Page{Template: "error.html", Title: "Error", Data: msg}
	page.toast(msg)
	a.render(w, r, sc, status, page)
}

func (a *App) render(w http.ResponseWriter, r *http.Request, sc *session.Context, status int, page *Page) {
	data := viewData{
		Title:     page.Title,
		Session:   sc.Session,
		Nav:       visibleNav(sc, page.Active),
		Flashes:   append(a.flashes.pop(w, r), page.Toasts...),
		CSRF:      csrf.TemplateField(r),
		Query:     r.URL.Query().Get("q"),
		Export:    page.Export,
		CanExport: page.Export != "" && sc.HasPermission(model.PermExportData),
		Data:      page.Data,
	}
	var buf bytes.Buffer
	if err := a.templates.render(&buf, page.Template, data); err != nil {
		slog.Error("Failed to render template", "template", page.Template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
