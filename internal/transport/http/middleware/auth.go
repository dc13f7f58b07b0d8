package middleware

import (
	"context"
	"net/http"

	"github.com/CodedSedorf/mern-auth/internal/domain"
	jwtinfra "github.com/CodedSedorf/mern-auth/internal/infrastructure/jwt"
)

type contextKey string

const UserIDKey contextKey = "userID"

// Auth returns middleware that validates the session cookie's JWT and
// injects the account id into the request context. Failures are reported
// through the uniform envelope, not a transport-level status.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie("token")
			if err != nil || c.Value == "" {
				writeFailure(w, domain.ErrNotAuthorized.Message)
				return
			}
			claims, err := provider.Verify(c.Value)
			if err != nil || claims.UserID == "" {
				writeFailure(w, domain.ErrNotAuthorized.Message)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated account id from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}
