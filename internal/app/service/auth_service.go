package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/common/security"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

// TokenRevoker records logged-out tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	authenticator *session.Authenticator
	revoker       TokenRevoker
}

func NewAuthService(authenticator *session.Authenticator, revoker TokenRevoker) *AuthService {
	return &AuthService{authenticator: authenticator, revoker: revoker}
}

type LoginRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type AuthResponse struct {
	User  *session.Session `json:"user"`
	Token string           `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	sess, err := s.authenticator.Login(req.Username, req.Password, req.Role)
	switch {
	case errors.Is(err, session.ErrMissingFields):
		return nil, fmt.Errorf("%w: %w", common.ErrBadRequest, err)
	case errors.Is(err, session.ErrInactiveAccount):
		return nil, fmt.Errorf("%w: %w", common.ErrForbidden, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	token, _, err := security.GenerateToken(security.Principal{
		UserID:      sess.ID,
		Username:    sess.Username,
		Role:        sess.Role,
		Permissions: sess.Permissions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{User: sess, Token: token}, nil
}

// Logout revokes the token the claims came from until it expires.
func (s *AuthService) Logout(ctx context.Context, claims map[string]interface{}) error {
	jti, err := security.TokenIDFromClaims(claims)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	if err := s.revoker.Revoke(ctx, jti, security.ExpiryFromClaims(claims)); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token the claims came from was logged out.
func (s *AuthService) IsRevoked(ctx context.Context, claims map[string]interface{}) (bool, error) {
	jti, err := security.TokenIDFromClaims(claims)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	return s.revoker.IsRevoked(ctx, jti)
}

// Me rebuilds the session a token was issued for, enriched from the
// directory when the user is still listed.
func (s *AuthService) Me(claims map[string]interface{}) (*session.Session, error) {
	p, err := security.PrincipalFromClaims(claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	sess := &session.Session{
		ID:          p.UserID,
		Username:    p.Username,
		Role:        p.Role,
		Permissions: p.Permissions,
	}
	if u, ok := s.authenticator.Directory().FindUser(p.Username); ok {
		sess.FullName = u.FullName
		sess.Email = u.Email
	}
	return sess, nil
}
