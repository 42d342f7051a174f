package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"scorecli/internal/config"
	"scorecli/internal/infrastructure"
	"scorecli/internal/services"
	handlers "scorecli/internal/transport/http"
	"scorecli/pkg/contracts"
)

// Version is overridable at build time with -ldflags.
var Version = contracts.Version

// Application is the report server container: configuration, services,
// and the HTTP server.
type Application struct {
	Config        *config.Config
	Server        *http.Server
	ReportService *services.ReportService
	HealthService *services.HealthService
	Logger        *slog.Logger
}

// NewApplication builds a fully wired application from the loaded
// configuration.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("version", Version),
		slog.Int("port", cfg.Server.Port))

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	reportService := services.NewReportService(cfg.Paths, cfg.Grading.Thresholds, logger)
	healthService := services.NewHealthService(Version, cfg.Paths, logger)

	router := handlers.NewRouter(cfg, reportService, healthService, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{
		Config:        cfg,
		Server:        server,
		ReportService: reportService,
		HealthService: healthService,
		Logger:        logger,
	}, nil
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully within the configured timeout.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
		defer cancel()

		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		a.Logger.Info("server stopped")
		return nil
	})

	err := g.Wait()
	infrastructure.CloseLogFile()
	return err
}

func (a *Application) shutdownTimeout() time.Duration {
	if a.Config.Server.ShutdownTimeout > 0 {
		return a.Config.Server.ShutdownTimeout
	}
	return 30 * time.Second
}
