package security

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/platform/config"
)

func setup(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: []byte("test-secret"), JWTExp: time.Hour}
	InitJWT()
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	setup(t)

	token, jti, err := GenerateToken(Principal{
		UserID:      3,
		Username:    "donor1",
		Role:        model.RoleDonor,
		Permissions: model.PermissionSet{model.PermManageDonations, model.PermViewRequests},
	})
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	decoded, err := jwtauth.VerifyToken(TokenAuth, token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	p, err := PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.UserID)
	assert.Equal(t, "donor1", p.Username)
	assert.Equal(t, model.RoleDonor, p.Role)
	assert.True(t, p.HasPermission(model.PermViewRequests))
	assert.False(t, p.HasPermission(model.PermViewCamps))

	gotJTI, err := TokenIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, jti, gotJTI)
	assert.WithinDuration(t, time.Now().Add(time.Hour), ExpiryFromClaims(claims), 5*time.Second)
}

func TestGenerateTokenUniqueIDs(t *testing.T) {
	setup(t)
	_, a, err := GenerateToken(Principal{UserID: 1, Role: model.RoleAdmin})
	require.NoError(t, err)
	_, b, err := GenerateToken(Principal{UserID: 1, Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPrincipalFromClaimsRejectsBadClaims(t *testing.T) {
	_, err := PrincipalFromClaims(map[string]interface{}{"role": "admin"})
	assert.Error(t, err)
	_, err = PrincipalFromClaims(map[string]interface{}{"user_id": "x", "role": "admin"})
	assert.Error(t, err)
	_, err = PrincipalFromClaims(map[string]interface{}{"user_id": "1"})
	assert.Error(t, err)
}

func TestAdminHasEverything(t *testing.T) {
	p := &Principal{Role: model.RoleAdmin}
	assert.True(t, p.HasPermission(model.PermExportData))
	var none *Principal
	assert.False(t, none.HasPermission(model.PermViewCamps))
}
