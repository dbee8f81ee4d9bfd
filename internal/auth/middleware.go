package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const adminUserKey contextKey = "adminUser"

// RequireAdmin enforces a valid admin bearer token on protected endpoints.
func RequireAdmin(gate *Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}
			username, err := gate.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), adminUserKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the validated admin username if present.
func AdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminUserKey).(string)
	return username, ok
}
