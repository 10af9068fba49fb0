package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// SlotKey is the key the logged-in user is stored under.
const SlotKey = "currentUser"

// Slot persists at most one Session per browser.
type Slot interface {
	Load(r *http.Request) (*Session, error)
	Save(w http.ResponseWriter, r *http.Request, s *Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// CookieSlot keeps the session JSON in a signed cookie.
type CookieSlot struct {
	store sessions.Store
	name  string
}

func NewCookieSlot(store sessions.Store, cookieName string) *CookieSlot {
	return &CookieSlot{store: store, name: cookieName}
}

func (c *CookieSlot) Load(r *http.Request) (*Session, error) {
	cs, err := c.store.Get(r, c.name)
	if err != nil {
		// A cookie signed with an old key decodes as a fresh, empty session.
		return nil, nil
	}
	raw, ok := cs.Values[SlotKey].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode session slot: %w", err)
	}
	return &s, nil
}

func (c *CookieSlot) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}
	cs, _ := c.store.Get(r, c.name)
	cs.Values[SlotKey] = string(raw)
	return cs.Save(r, w)
}

func (c *CookieSlot) Clear(w http.ResponseWriter, r *http.Request) error {
	cs, _ := c.store.Get(r, c.name)
	delete(cs.Values, SlotKey)
	cs.Options.MaxAge = -1
	return cs.Save(r, w)
}
