package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mjsalles/alertahub-backend/internal/auth"
	"github.com/mjsalles/alertahub-backend/pkg/ctxutil"
)

// tokenValidator checks a bearer token and returns the operator identity.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth returns middleware that requires a valid bearer token. Requests
// without one are rejected with 401; the operator ID is stored in the
// request context for downstream handlers. Every contact and alert route is
// guarded — there are no anonymous reads.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := ctxutil.WithOperatorID(r.Context(), identity.OperatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"success": false,
		"error":   "Unauthorized: " + message,
	})
}
