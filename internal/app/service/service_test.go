package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/common/security"
	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/platform/config"
)

type memoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func (m *memoryRevoker) Revoke(_ context.Context, jti string, exp time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.revoked == nil {
		m.revoked = map[string]time.Time{}
	}
	m.revoked[jti] = exp
	return nil
}

func (m *memoryRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[jti]
	return ok, nil
}

func newAuthService(t *testing.T) (*AuthService, *memoryRevoker) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: []byte("svc-secret"), JWTExp: time.Hour}
	security.InitJWT()
	dir, err := session.LoadDirectory("")
	require.NoError(t, err)
	rev := &memoryRevoker{}
	return NewAuthService(session.NewAuthenticator(dir), rev), rev
}

func claimsOf(t *testing.T, token string) map[string]interface{} {
	t.Helper()
	decoded, err := security.TokenAuth.Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	return claims
}

func TestAuthServiceLoginLogout(t *testing.T) {
	svc, rev := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, LoginRequest{Username: "volunteer1", Password: "pass123", Role: model.RoleVolunteer})
	require.NoError(t, err)
	assert.Equal(t, "volunteer1", resp.User.Username)
	require.NotEmpty(t, resp.Token)

	claims := claimsOf(t, resp.Token)
	me, err := svc.Me(claims)
	require.NoError(t, err)
	assert.Equal(t, "John Volunteer", me.FullName)
	assert.True(t, me.HasPermission(model.PermManageRequests))

	revoked, err := svc.IsRevoked(ctx, claims)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(ctx, claims))
	revoked, err = svc.IsRevoked(ctx, claims)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Len(t, rev.revoked, 1)
}

func TestAuthServiceLoginErrors(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Username: "donor1", Password: "pass123", Role: model.RoleVolunteer})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Username: "donor1"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

type stubRequestRepo struct {
	statuses map[int64]string
}

func (s *stubRequestRepo) List(context.Context) ([]model.ReliefRequest, error) { return nil, nil }
func (s *stubRequestRepo) FindByID(context.Context, int64) (*model.ReliefRequest, error) {
	return nil, common.NotFound("Request")
}
func (s *stubRequestRepo) Create(context.Context, *model.ReliefRequest) error { return nil }
func (s *stubRequestRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	if _, ok := s.statuses[id]; !ok {
		return common.NotFound("Request")
	}
	s.statuses[id] = status
	return nil
}
func (s *stubRequestRepo) QuantityByResource(context.Context, string) ([]model.ResourceQuantity, error) {
	return []model.ResourceQuantity{{Type: "Tents", Quantity: 12}}, nil
}

func TestRequestServiceUpdateStatus(t *testing.T) {
	repo := &stubRequestRepo{statuses: map[int64]string{1: model.RequestStatusPending}}
	svc := NewRequestService(repo)

	upd, err := svc.UpdateStatus(context.Background(), 1, model.RequestStatusFulfilled)
	require.NoError(t, err)
	assert.Equal(t, &model.StatusUpdate{ID: 1, Status: model.RequestStatusFulfilled}, upd)
	assert.Equal(t, model.RequestStatusFulfilled, repo.statuses[1])

	_, err = svc.UpdateStatus(context.Background(), 99, model.RequestStatusFulfilled)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.UpdateStatus(context.Background(), 1, " ")
	assert.True(t, errors.Is(err, common.ErrBadRequest))
}

func TestResourceServiceAvailableIsACopy(t *testing.T) {
	svc := NewResourceService(nil, &stubRequestRepo{})
	a := svc.Available()
	require.Len(t, a, 6)
	a[0].Quantity = -1
	assert.Equal(t, 250, svc.Available()[0].Quantity)

	req, err := svc.Requested(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.ResourceQuantity{{Type: "Tents", Quantity: 12}}, req)
}
