package services

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"scorecli/internal/config"
)

// HealthService reports process and data-directory health.
type HealthService struct {
	version   string
	paths     config.PathsConfig
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus is the health check response.
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Checks    map[string]string      `json:"checks,omitempty"`
}

// NewHealthService creates a health service.
func NewHealthService(version string, paths config.PathsConfig, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		paths:     paths,
		startTime: time.Now(),
		logger:    logger.With(slog.String("service", "health")),
	}
}

// HealthCheck reports overall health. The service degrades rather than
// fails when the data directory is missing, since summaries of
// uploaded paths still work.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	checks := map[string]string{
		"data_dir": "ok",
	}
	status := "healthy"

	if _, err := os.Stat(s.paths.DataDir); err != nil {
		checks["data_dir"] = "missing"
		status = "degraded"
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Runtime: map[string]interface{}{
			"go_version": runtime.Version(),
			"os":         runtime.GOOS,
			"arch":       runtime.GOARCH,
			"goroutines": runtime.NumGoroutine(),
		},
		Checks: checks,
	}
}

// LivenessCheck reports that the process is running.
func (s *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	}
}
