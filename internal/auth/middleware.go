package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/hanyul/sleepwise/pkg/problem"
)

type contextKey struct{}

var userIDKey contextKey

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID extracts the authenticated user's ID from the context.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// Middleware authenticates requests with a Bearer access token.
type Middleware struct {
	tokens *TokenManager
}

func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate rejects requests without a valid access token and puts
// the user ID into the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			problem.Unauthorized("Missing bearer token").Write(w)
			return
		}

		userID, _, err := m.tokens.Parse(strings.TrimPrefix(header, "Bearer "), TokenTypeAccess)
		if err != nil {
			problem.Unauthorized("Invalid or expired token").Write(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
