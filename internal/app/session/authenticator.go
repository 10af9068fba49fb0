package session

import (
	"errors"
	"strings"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid username, password, or role")
	ErrInactiveAccount    = errors.New("account is not active")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUnknownRole        = errors.New("unknown role")
)

// Message turns an authenticator error into the text shown on the login and
// registration forms.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please fill all required fields"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username, password, or role. Please try again."
	case errors.Is(err, ErrInactiveAccount):
		return "Your account is not active. Please contact an administrator."
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, ErrUsernameTaken):
		return "Username already exists"
	case errors.Is(err, ErrUnknownRole):
		return "Please choose a valid role"
	case err == nil:
		return ""
	default:
		return "Something went wrong. Please try again."
	}
}

type Authenticator struct {
	directory *Directory
}

func NewAuthenticator(d *Directory) *Authenticator {
	return &Authenticator{directory: d}
}

func (a *Authenticator) Directory() *Directory {
	return a.directory
}

// Login matches username, password and role exactly. The role must be the
// one the user holds: picking another role is the same failure as a wrong
// password.
func (a *Authenticator) Login(username, password string, role model.Role) (*Session, error) {
	if blank(username) || blank(password) || blank(string(role)) {
		return nil, ErrMissingFields
	}

	u, ok := a.directory.FindUser(username)
	if !ok || u.Password != password || u.Role != role {
		return nil, ErrInvalidCredentials
	}
	if u.Status != model.UserStatusActive {
		return nil, ErrInactiveAccount
	}
	return newSession(u), nil
}

type Registration struct {
	FullName        string
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            model.Role
}

// Register validates a sign-up form and returns the pending user it would
// create. Nothing is persisted: accounts only exist in the directory file.
func (a *Authenticator) Register(reg Registration) (*model.User, error) {
	for _, v := range []string{reg.FullName, reg.Username, reg.Email, reg.Phone, reg.Password, reg.ConfirmPassword, string(reg.Role)} {
		if blank(v) {
			return nil, ErrMissingFields
		}
	}
	if reg.Password != reg.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if _, taken := a.directory.FindUser(reg.Username); taken {
		return nil, ErrUsernameTaken
	}
	if !reg.Role.Valid() {
		return nil, ErrUnknownRole
	}
	return &model.User{
		Username:    reg.Username,
		FullName:    reg.FullName,
		Email:       reg.Email,
		Phone:       reg.Phone,
		Role:        reg.Role,
		Status:      model.UserStatusPending,
		Permissions: a.directory.PermissionsFor(reg.Role),
	}, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
