package middleware

import (
	"context"
	"net/http"

	"github.com/go-auth-nosql/internal/transport/http/session"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Session returns middleware that validates the session cookie and injects
// the authenticated account id into the request context. Requests without a
// valid cookie are rejected as unauthorized; there is no fallback identity.
func Session(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.Authenticate(r)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated account id from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
