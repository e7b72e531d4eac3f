package transport

import (
	"context"
	"net/http"

	"github.com/upkeephq/upkeep/internal/auth"
)

type claimsKey struct{}

// ClaimsFromContext returns the authenticated claims from context, if present.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// actorFromContext returns the authenticated user id for change attribution,
// or nil for system-initiated calls.
func actorFromContext(ctx context.Context) *string {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.UserID == "" {
		return nil
	}
	id := claims.UserID
	return &id
}

// AuthMiddleware enforces bearer-token authentication on every route it
// wraps and stores the claims in the request context.
func AuthMiddleware(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "authorization header required")
				return
			}

			claims, err := authService.ValidateToken(header)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission rejects requests whose role doesn't allow an action.
func RequirePermission(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing credentials")
				return
			}
			if !claims.HasPermission(action) {
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
