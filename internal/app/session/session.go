// Package session implements login against the user directory, the
// persisted session slot and the two access-control predicates used to gate
// what the dashboard shows.
//
// These checks only decide visibility. Unless the API is started with
// permission enforcement, every endpoint remains reachable without a session.
package session

import (
	"slices"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

// Session is what gets persisted in the slot after a successful login. It
// never carries the password.
type Session struct {
	ID          int64               `json:"id"`
	Username    string              `json:"username"`
	FullName    string              `json:"fullName"`
	Email       string              `json:"email"`
	Role        model.Role          `json:"role"`
	Permissions model.PermissionSet `json:"permissions"`
	Token       string              `json:"token,omitempty"` // API bearer token, when one was issued
}

func newSession(u *model.User) *Session {
	return &Session{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: append(model.PermissionSet(nil), u.Permissions...),
	}
}

// HasPermission is true for admins, for holders of "all", and for holders of
// the permission itself. A nil session is anonymous and has nothing.
func (s *Session) HasPermission(p model.Permission) bool {
	if s == nil {
		return false
	}
	if s.Role == model.RoleAdmin || s.Permissions.Contains(model.PermAll) {
		return true
	}
	return s.Permissions.Contains(p)
}

// CheckRoleAccess is true for admins and for members of roles.
func (s *Session) CheckRoleAccess(roles ...model.Role) bool {
	if s == nil {
		return false
	}
	if s.Role == model.RoleAdmin {
		return true
	}
	return slices.Contains(roles, s.Role)
}
