package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/summitit/appointments/internal/appointments"
	"github.com/summitit/appointments/internal/auth"
	httpmiddleware "github.com/summitit/appointments/internal/http/middleware"
	"github.com/summitit/appointments/internal/observability/metrics"
	"github.com/summitit/appointments/internal/services"
	"github.com/summitit/appointments/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AppointmentsHandler *appointments.Handler
	AuthHandler         *auth.Handler
	Gate                *auth.Gate
	ServicesHandler     *services.Handler
	HTTPMetrics         *metrics.HTTPMetrics
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger, cfg.HTTPMetrics))
	}

	// Liveness and metrics stay outside the /api prefix.
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Summit IT Services API"})
		})

		// Public booking surface
		api.Post("/appointments", cfg.AppointmentsHandler.Create)
		api.Get("/services", cfg.ServicesHandler.List)
		api.Post("/admin/login", cfg.AuthHandler.Login)

		// Admin surface, guarded by the access gate
		api.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin(cfg.Gate))
			admin.Get("/appointments", cfg.AppointmentsHandler.List)
			admin.Put("/appointments/{id}", cfg.AppointmentsHandler.Update)
			admin.Get("/admin/verify", cfg.AuthHandler.Verify)
		})
	})

	return r
}
