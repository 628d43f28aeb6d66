package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mjsalles/alertahub-backend/internal/adapter/postgres"
	"github.com/mjsalles/alertahub-backend/internal/adapter/postgres/alertlog"
	"github.com/mjsalles/alertahub-backend/internal/adapter/postgres/contact"
	"github.com/mjsalles/alertahub-backend/internal/adapter/postgres/operator"
	"github.com/mjsalles/alertahub-backend/internal/adapter/whatsapp"
	"github.com/mjsalles/alertahub-backend/internal/auth"
	"github.com/mjsalles/alertahub-backend/internal/config"
	alertsvc "github.com/mjsalles/alertahub-backend/internal/service/alert"
	authsvc "github.com/mjsalles/alertahub-backend/internal/service/auth"
	contactsvc "github.com/mjsalles/alertahub-backend/internal/service/contact"
	"github.com/mjsalles/alertahub-backend/internal/transport/middleware"
	"github.com/mjsalles/alertahub-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires repositories, services, and
// handlers, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("whatsapp_configured", !cfg.WhatsApp.Pending()),
	)

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, cfg.Database.MigrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied", slog.String("dir", cfg.Database.MigrationsDir))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	operatorRepo := operator.New(pool)
	contactRepo := contact.New(pool)
	alertLogRepo := alertlog.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	gateway := whatsapp.NewGateway(cfg.WhatsApp, logger)

	authService := authsvc.NewService(logger, operatorRepo, txManager, jwtManager, cfg.Auth, cfg.Admin)
	contactService := contactsvc.NewService(logger, contactRepo)
	alertService := alertsvc.NewService(logger, contactRepo, gateway, alertLogRepo)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authService, logger),
		Contacts:  rest.NewContactHandler(contactService, logger),
		Alerts:    rest.NewAlertHandler(alertService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Validator: authService,
		Limiter:   limiter,
		Config:    *cfg,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
