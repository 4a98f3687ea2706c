package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"reviewhub-backend/internal/auth"
	"reviewhub-backend/internal/models"
)

type contextKey string

const userKey contextKey = "user"

// Identify resolves a Bearer token to a user and stores it in the request
// context. Requests without a usable token pass through anonymously.
func Identify(provider auth.IdentityProvider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := provider.Verify(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "ignoring unusable bearer token", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// GetUser returns the user set by Identify, or nil for anonymous requests.
func GetUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}

// WithUser stores user in ctx the same way Identify does.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
