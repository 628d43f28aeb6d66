//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mjsalles/alertahub-backend/internal/adapter/postgres"
	"github.com/mjsalles/alertahub-backend/internal/adapter/postgres/alertlog"
	contactrepo "github.com/mjsalles/alertahub-backend/internal/adapter/postgres/contact"
	operatorrepo "github.com/mjsalles/alertahub-backend/internal/adapter/postgres/operator"
	"github.com/mjsalles/alertahub-backend/internal/adapter/postgres/testhelper"
	"github.com/mjsalles/alertahub-backend/internal/adapter/whatsapp"
	authpkg "github.com/mjsalles/alertahub-backend/internal/auth"
	"github.com/mjsalles/alertahub-backend/internal/config"
	alertsvc "github.com/mjsalles/alertahub-backend/internal/service/alert"
	authsvc "github.com/mjsalles/alertahub-backend/internal/service/auth"
	contactsvc "github.com/mjsalles/alertahub-backend/internal/service/contact"
	"github.com/mjsalles/alertahub-backend/internal/transport/middleware"
	"github.com/mjsalles/alertahub-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

const e2eAdminSecret = "e2e-admin-secret-0123456789"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool

	// whatsappCalls counts requests that reached the fake provider.
	whatsappCalls *atomic.Int64
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeWhatsApp runs an httptest server imitating the WhatsApp Cloud API send
// endpoint. Every accepted request increments calls and returns a fresh
// message id.
func fakeWhatsApp(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer e2e-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"messages":[{"id":"wamid.e2e-%d"}]}`, calls.Load())
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake WhatsApp provider.
func setupTestServer(t *testing.T) *testServer {
	calls := &atomic.Int64{}
	return buildServer(t, calls, func(providerURL string) config.WhatsAppConfig {
		return config.WhatsAppConfig{
			APIURL:  providerURL,
			Token:   "e2e-token",
			PhoneID: "123456789",
			Timeout: 5 * time.Second,
		}
	})
}

// setupPendingServer is setupTestServer with provider credentials still on the
// administrative placeholder.
func setupPendingServer(t *testing.T) *testServer {
	calls := &atomic.Int64{}
	return buildServer(t, calls, func(providerURL string) config.WhatsAppConfig {
		return config.WhatsAppConfig{
			APIURL:  providerURL,
			Token:   config.PendingConfiguration,
			PhoneID: config.PendingConfiguration,
			Timeout: 5 * time.Second,
		}
	})
}

func buildServer(t *testing.T, calls *atomic.Int64, waCfg func(providerURL string) config.WhatsAppConfig) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	provider := fakeWhatsApp(t, calls)

	cfg := config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			LoginRateLimit: 1000,
		},
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-at-least-32-chars-long!!",
			JWTIssuer:        "alertahub-e2e",
			TokenTTL:         15 * time.Minute,
			PasswordHashCost: 4,
		},
		Admin:    config.AdminConfig{Secret: e2eAdminSecret},
		WhatsApp: waCfg(provider.URL),
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,X-Admin-Secret",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}

	txm := postgres.NewTxManager(pool)
	operators := operatorrepo.New(pool)
	contacts := contactrepo.New(pool)
	records := alertlog.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	gateway := whatsapp.NewGateway(cfg.WhatsApp, logger)

	authService := authsvc.NewService(logger, operators, txm, jwtMgr, cfg.Auth, cfg.Admin)
	contactService := contactsvc.NewService(logger, contacts)
	alertService := alertsvc.NewService(logger, contacts, gateway, records)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authService, logger),
		Contacts:  rest.NewContactHandler(contactService, logger),
		Alerts:    rest.NewAlertHandler(alertService, logger),
		Health:    rest.NewHealthHandler(pool, "e2e"),
		Validator: authService,
		Limiter:   limiter,
		Config:    cfg,
		Logger:    logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:           srv.URL,
		Client:        srv.Client(),
		Pool:          pool,
		whatsappCalls: calls,
	}
}

// doJSON sends a JSON request and returns status + decoded body. token and
// adminSecret are attached when non-empty.
func (ts *testServer) doJSON(t *testing.T, method, path, token, adminSecret string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if adminSecret != "" {
		req.Header.Set("X-Admin-Secret", adminSecret)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerAndLogin creates a fresh operator through the API and returns a
// valid token for it.
func registerAndLogin(t *testing.T, ts *testServer) string {
	t.Helper()

	email := fmt.Sprintf("op-%s@example.com", uuid.NewString()[:8])

	status, _ := ts.doJSON(t, http.MethodPost, "/auth/register", "", e2eAdminSecret, map[string]any{
		"email":    email,
		"password": "e2e-password-1",
		"name":     "E2E Operator",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.doJSON(t, http.MethodPost, "/auth/login", "", "", map[string]any{
		"email":    email,
		"password": "e2e-password-1",
	})
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	require.NotEmpty(t, token)
	return token
}

// createContact registers a contact through the API and returns its id.
func createContact(t *testing.T, ts *testServer, token string) string {
	t.Helper()

	phone := fmt.Sprintf("55%011d", time.Now().UnixNano()%100000000000)
	status, body := ts.doJSON(t, http.MethodPost, "/contacts", token, "", map[string]any{
		"name":  "E2E Contact",
		"phone": phone,
	})
	require.Equal(t, http.StatusCreated, status)

	contact, ok := body["contact"].(map[string]any)
	require.True(t, ok, "expected contact object")
	id, ok := contact["id"].(string)
	require.True(t, ok, "expected contact id")
	return id
}
