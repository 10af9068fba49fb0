package web

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
)

// form reads a posted form and remembers the first kind of problem it saw.
type form struct {
	r       *http.Request
	missing bool
	invalid bool
}

func newForm(r *http.Request) *form {
	return &form{r: r}
}

func (f *form) required(name string) string {
	v := strings.TrimSpace(f.r.PostFormValue(name))
	if v == "" {
		f.missing = true
	}
	return v
}

func (f *form) optional(name string) *string {
	v := strings.TrimSpace(f.r.PostFormValue(name))
	if v == "" {
		return nil
	}
	return &v
}

// number reads a required non-negative integer.
func (f *form) number(name string) int {
	v := f.required(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		f.invalid = true
	}
	return n
}

func (f *form) checkbox(name string) bool {
	return f.r.PostFormValue(name) != ""
}

func (f *form) problem() string {
	switch {
	case f.missing:
		return "Please fill all required fields"
	case f.invalid:
		return "Please enter valid numbers"
	}
	return ""
}

// returnPath is the local page a form asked to go back to, or fallback.
func returnPath(r *http.Request, fallback string) string {
	p := r.PostFormValue("return")
	if strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") {
		return p
	}
	return fallback
}

// submit runs one form action: validation problems and API failures become
// error toasts, success a success toast, and the browser is always sent back
// to target.
func (a *App) submit(w http.ResponseWriter, r *http.Request, f *form, target, success, failure string,
	call func(ctx context.Context, api *client.Client) error) {
	defer http.Redirect(w, r, target, http.StatusSeeOther)

	if msg := f.problem(); msg != "" {
		a.flashes.add(w, r, flashError, msg)
		return
	}
	sc := session.FromContext(r.Context())
	if err := call(r.Context(), a.clientFor(sc)); err != nil {
		slog.Error(failure, "path", r.URL.Path, "error", err)
		a.flashes.add(w, r, flashError, failure)
		return
	}
	a.flashes.add(w, r, flashSuccess, success)
}
