package web

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

func init() {
	gob.Register(FlashMessage{})
}

const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

// FlashMessage is a toast carried across one redirect.
type FlashMessage struct {
	Type    string
	Message string
}

type flashes struct {
	store sessions.Store
	name  string
}

func (f *flashes) add(w http.ResponseWriter, r *http.Request, kind, msg string) {
	s, _ := f.store.Get(r, f.name)
	s.AddFlash(FlashMessage{Type: kind, Message: msg})
	if err := s.Save(r, w); err != nil {
		slog.Error("Failed to save flash", "error", err)
	}
}

// pop returns and clears the pending flashes.
func (f *flashes) pop(w http.ResponseWriter, r *http.Request) []FlashMessage {
	s, _ := f.store.Get(r, f.name)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	out := make([]FlashMessage, 0, len(raw))
	for _, v := range raw {
		if fm, ok := v.(FlashMessage); ok {
			out = append(out, fm)
		}
	}
	if err := s.Save(r, w); err != nil {
		slog.Error("Failed to clear flashes", "error", err)
	}
	return out
}
