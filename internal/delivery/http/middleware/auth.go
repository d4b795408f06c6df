package middleware

import (
	"context"
	"net/http"
	"strings"

	h "conandweb/internal/delivery/http/helpers"
	"conandweb/internal/domain"
)

type contextKey string

const (
	claimsKey contextKey = "claims"
	localeKey contextKey = "locale"
	reqIDKey  contextKey = "requestID"
)

// SetClaims returns a context carrying the authenticated operator's claims.
func SetClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated operator's claims, if present.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*domain.Claims)
	return c, ok && c != nil
}

// RequireRole returns a wrapper that validates the Bearer token and requires one of roles.
// A missing or invalid token yields 401, a valid token without a matching role 403.
func RequireRole(verifier domain.TokenVerifier, roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			if len(roles) > 0 && !claims.HasAnyRole(roles...) {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, domain.ErrForbidden.Error())
				return
			}
			next(w, r.WithContext(SetClaims(r.Context(), claims)))
		}
	}
}
