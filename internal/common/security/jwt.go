package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/platform/config"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// Principal is the identity a token is issued for.
type Principal struct {
	UserID      int64
	Username    string
	Role        model.Role
	Permissions model.PermissionSet
}

// GenerateToken issues a signed token for p. The returned jti identifies the
// token for revocation.
func GenerateToken(p Principal) (token, jti string, err error) {
	now := time.Now()
	jti = uuid.NewString()
	perms := make([]string, len(p.Permissions))
	for i, perm := range p.Permissions {
		perms[i] = string(perm)
	}
	claims := jwt.MapClaims{
		"user_id":  strconv.FormatInt(p.UserID, 10),
		"username": p.Username,
		"role":     string(p.Role),
		"perms":    perms,
		"jti":      jti,
		"exp":      now.Add(config.AppConfig.JWTExp).Unix(),
		"iat":      now.Unix(),
	}
	_, token, err = TokenAuth.Encode(claims)
	return token, jti, err
}

// PrincipalFromClaims rebuilds the principal from verified token claims.
func PrincipalFromClaims(claims map[string]interface{}) (*Principal, error) {
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("user_id claim is missing or not a string")
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, errors.New("user_id claim is not numeric")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("role claim is missing or not a string")
	}
	username, _ := claims["username"].(string)

	p := &Principal{UserID: id, Username: username, Role: model.Role(role)}
	switch perms := claims["perms"].(type) {
	case []interface{}:
		for _, v := range perms {
			if s, ok := v.(string); ok {
				p.Permissions = append(p.Permissions, model.Permission(s))
			}
		}
	case []string:
		for _, s := range perms {
			p.Permissions = append(p.Permissions, model.Permission(s))
		}
	}
	return p, nil
}

func TokenIDFromClaims(claims map[string]interface{}) (string, error) {
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return "", errors.New("jti claim is missing")
	}
	return jti, nil
}

// ExpiryFromClaims returns the token's expiry, or zero when it has none.
func ExpiryFromClaims(claims map[string]interface{}) time.Time {
	switch exp := claims["exp"].(type) {
	case time.Time:
		return exp
	case float64:
		return time.Unix(int64(exp), 0)
	case int64:
		return time.Unix(exp, 0)
	}
	return time.Time{}
}

// HasPermission mirrors the dashboard's predicate for token holders.
func (p *Principal) HasPermission(perm model.Permission) bool {
	if p == nil {
		return false
	}
	if p.Role == model.RoleAdmin || p.Permissions.Contains(model.PermAll) {
		return true
	}
	return p.Permissions.Contains(perm)
}
