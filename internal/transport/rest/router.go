package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mjsalles/alertahub-backend/internal/auth"
	"github.com/mjsalles/alertahub-backend/internal/config"
	"github.com/mjsalles/alertahub-backend/internal/transport/middleware"
)

// tokenValidator resolves a bearer token into an authenticated identity.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Auth     *AuthHandler
	Contacts *ContactHandler
	Alerts   *AlertHandler
	Health   *HealthHandler

	Validator tokenValidator
	Limiter   *middleware.RateLimiter
	Config    config.Config
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler: all routes plus the middleware stack.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Auth(deps.Validator)

	// Public.
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)
	mux.Handle("POST /auth/login",
		deps.Limiter.Limit(deps.Config.Server.LoginRateLimit)(http.HandlerFunc(deps.Auth.Login)))
	mux.HandleFunc("POST /auth/register", deps.Auth.Register)

	// Authenticated.
	mux.Handle("GET /auth/me", authed(http.HandlerFunc(deps.Auth.Me)))
	mux.Handle("POST /contacts", authed(http.HandlerFunc(deps.Contacts.Create)))
	mux.Handle("GET /contacts", authed(http.HandlerFunc(deps.Contacts.List)))
	mux.Handle("GET /contact/{id}", authed(http.HandlerFunc(deps.Contacts.Get)))
	mux.Handle("POST /send-alert", authed(http.HandlerFunc(deps.Alerts.Send)))
	mux.Handle("GET /alerts", authed(http.HandlerFunc(deps.Alerts.List)))

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORS),
	)
	return chain(mux)
}
