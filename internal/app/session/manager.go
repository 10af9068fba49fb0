package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

// Context is the explicit per-page-load view of who is logged in. A nil
// Session means anonymous.
type Context struct {
	Session *Session
}

func (c *Context) Authenticated() bool {
	return c != nil && c.Session != nil
}

func (c *Context) HasPermission(p model.Permission) bool {
	if c == nil {
		return false
	}
	return c.Session.HasPermission(p)
}

func (c *Context) CheckRoleAccess(roles ...model.Role) bool {
	if c == nil {
		return false
	}
	return c.Session.CheckRoleAccess(roles...)
}

type ctxKey struct{}

func WithContext(ctx context.Context, sc *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// FromContext returns the page's session context, or an anonymous one.
func FromContext(ctx context.Context) *Context {
	if sc, ok := ctx.Value(ctxKey{}).(*Context); ok {
		return sc
	}
	return &Context{}
}

// Manager ties the slot to the page-load lifecycle: Begin on every request,
// Start on login, End on logout.
type Manager struct {
	slot        Slot
	loginPath   string
	homePath    string
	publicPaths []string
}

func NewManager(slot Slot, loginPath, homePath string, publicPrefixes ...string) *Manager {
	return &Manager{slot: slot, loginPath: loginPath, homePath: homePath, publicPaths: publicPrefixes}
}

func (m *Manager) Begin(r *http.Request) *Context {
	s, err := m.slot.Load(r)
	if err != nil {
		slog.Warn("Discarding unreadable session slot", "error", err)
		return &Context{}
	}
	return &Context{Session: s}
}

func (m *Manager) Start(w http.ResponseWriter, r *http.Request, s *Session) error {
	return m.slot.Save(w, r, s)
}

func (m *Manager) End(w http.ResponseWriter, r *http.Request) error {
	return m.slot.Clear(w, r)
}

// RedirectFor applies the two page-load rules: anonymous visitors of
// protected pages go to the login page, logged-in visitors of the login page
// go home.
func (m *Manager) RedirectFor(sc *Context, path string) (string, bool) {
	onLogin := path == m.loginPath
	switch {
	case sc.Authenticated() && onLogin:
		return m.homePath, true
	case !sc.Authenticated() && !onLogin && !m.isPublic(path):
		return m.loginPath, true
	}
	return "", false
}

func (m *Manager) isPublic(path string) bool {
	for _, p := range m.publicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Middleware loads the slot, enforces the redirect rules and makes the
// Context available to handlers.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc := m.Begin(r)
		if target, ok := m.RedirectFor(sc, r.URL.Path); ok {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), sc)))
	})
}
