package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scorecli/internal/config"
	"scorecli/internal/files"
	"scorecli/internal/middleware"
	"scorecli/internal/services"
)

// NewRouter assembles the full middleware chain and API routes for the
// report server.
func NewRouter(cfg *config.Config, reports *services.ReportService, health *services.HealthService, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Metrics)

	if cfg.Server.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, logger)
		r.Use(rl.Handler)
	}

	reportHandler := NewReportHandler(reports, logger)
	healthHandler := NewHealthHandler(health, logger)
	datasetHandler := NewDatasetHandler(files.NewDiscovery(cfg.Paths.DataDir), logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", reportHandler.Routes())
		r.Get("/datasets", datasetHandler.ListDatasets)
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/live", healthHandler.LivenessCheck)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
