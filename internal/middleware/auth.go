package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Dan9191/runway-service/internal/auth"
	"github.com/Dan9191/runway-service/internal/config"
	"github.com/gorilla/mux"
)

type contextKey int

const (
	userIDKey contextKey = iota
	requestIDKey
)

// UserIDFromContext returns the authenticated user id set by AuthMiddleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID stores an authenticated user id in ctx
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				unauthorized(w)
				return
			}

			userID, err := auth.ParseToken(strings.TrimSpace(token), cfg.JWTSecret)
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"Could not validate credentials"}`))
}
