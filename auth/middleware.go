package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/remainders-go/apperror"
	"github.com/user/remainders-go/config"
)

// ContextKey is the type used for context keys to avoid collisions with other
// packages.
type ContextKey string

// UserIDKey is the key under which the authenticated caller's ID is stored in
// the request context.
const UserIDKey ContextKey = "userID"

// Middleware returns a chi-compatible middleware that authenticates the
// request from the Authorization header. Requests without a valid bearer
// token are rejected with 401 before reaching the handler; for the rest the
// caller's user ID is added to the request context.
func Middleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("authentication credentials were not provided", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			claims, err := ParseToken(parts[1], cfg)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("invalid or expired token", err))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated caller's ID from the
// request context. Returns 0 and false if no caller was resolved.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
