package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/summitit/appointments/internal/api/router"
	"github.com/summitit/appointments/internal/appointments"
	"github.com/summitit/appointments/internal/auth"
	"github.com/summitit/appointments/internal/config"
	"github.com/summitit/appointments/internal/notify"
	"github.com/summitit/appointments/internal/observability/metrics"
	"github.com/summitit/appointments/internal/services"
	"github.com/summitit/appointments/pkg/logging"
)

func main() {
	// Load a local .env when present; real deployments set the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting appointments API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Appointment store: Postgres when configured, in-memory otherwise.
	var repo appointments.Repository
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
		}
		cancel()
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		repo = appointments.NewPostgresRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory appointment store")
		repo = appointments.NewInMemoryRepository()
	}

	// Metrics
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	emailMetrics := metrics.NewEmailMetrics(registry)

	// Notification dispatcher; no SendGrid key degrades to a logged no-op.
	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		logger.Warn("SENDGRID_API_KEY not set, email notifications disabled")
		sender = notify.NewStubEmailSender(logger)
	}
	dispatcher := notify.NewDispatcher(sender, cfg.ContactEmail, emailMetrics, logger)

	// Access gate and handlers
	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminJWTSecret)
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" || cfg.AdminJWTSecret == "" {
		logger.Warn("admin credentials or ADMIN_JWT_SECRET not fully configured, admin endpoints will reject all requests")
	}

	r := router.New(&router.Config{
		Logger:              logger,
		AppointmentsHandler: appointments.NewHandler(repo, dispatcher, logger),
		AuthHandler:         auth.NewHandler(gate, logger),
		Gate:                gate,
		ServicesHandler:     services.NewHandler(),
		HTTPMetrics:         httpMetrics,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Let in-flight notification dispatches drain, then release the pool.
	dispatcher.Wait()
	if pool != nil {
		pool.Close()
	}

	logger.Info("server stopped")
}
