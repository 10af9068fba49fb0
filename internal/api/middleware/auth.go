package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/common/security"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type contextKey string

const (
	PrincipalCtxKey contextKey = "principal"
	ClaimsCtxKey    contextKey = "claims"
)

// RevocationChecker tells whether a verified token was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, claims map[string]interface{}) (bool, error)
}

// Authenticator rejects requests without a valid, unrevoked bearer token.
// It expects jwtauth.Verifier to run first.
func Authenticator(revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				if err == nil || errors.Is(err, jwtauth.ErrNoTokenFound) {
					common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
				} else {
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
				}
				return
			}

			principal, err := security.PrincipalFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(r.Context(), claims)
				if err != nil {
					slog.Error("Revocation check failed", "error", err)
					common.RespondWithError(w, http.StatusInternalServerError, "Could not verify token")
					return
				}
				if revoked {
					common.RespondWithError(w, http.StatusUnauthorized, "Token has been revoked")
					return
				}
			}

			ctx := context.WithValue(r.Context(), PrincipalCtxKey, principal)
			ctx = context.WithValue(ctx, ClaimsCtxKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission lets the request through when the principal holds any of
// perms. Admins and holders of "all" always pass. With no perms any
// authenticated principal passes.
func RequirePermission(perms ...model.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := GetPrincipalFromContext(r.Context())
			if !ok {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}
			if len(perms) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			for _, perm := range perms {
				if p.HasPermission(perm) {
					next.ServeHTTP(w, r)
					return
				}
			}
			common.RespondWithError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}

func GetPrincipalFromContext(ctx context.Context) (*security.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(*security.Principal)
	return p, ok
}

func GetClaimsFromContext(ctx context.Context) (map[string]interface{}, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(map[string]interface{})
	return claims, ok
}
