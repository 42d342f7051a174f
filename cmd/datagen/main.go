package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"scorecli/internal/config"
	"scorecli/internal/dataprocessing"
	"scorecli/internal/infrastructure"
	"scorecli/internal/validation"
)

func main() {
	numRecords := flag.Int("n", 100, "number of records to generate")
	invalidRate := flag.Float64("invalid-rate", 0.1, "fraction of records with malformed scores (0..1)")
	seed := flag.Int64("seed", 1, "random seed; the same seed yields the same dataset")
	outPath := flag.String("out", "", "output CSV path (defaults to data/student_scores_<n>.csv)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	genCfg := dataprocessing.GeneratorConfig{
		NumRecords:  *numRecords,
		InvalidRate: *invalidRate,
		Seed:        *seed,
	}
	if !genCfg.IsValid() {
		logger.Error("Invalid generator configuration",
			slog.Int("num_records", *numRecords),
			slog.Float64("invalid_rate", *invalidRate))
		os.Exit(1)
	}

	out := *outPath
	if out == "" {
		out = cfg.Paths.DatasetPath(*numRecords)
	}

	if err := validation.NewPathValidator(logger).ValidateOutputDirectory(out); err != nil {
		logger.Error("Output validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	records := dataprocessing.Generate(genCfg)

	if err := dataprocessing.WriteDataset(context.Background(), out, records, logger); err != nil {
		logger.Error("Failed to write dataset",
			slog.String("path", out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Dataset generated",
		slog.String("path", out),
		slog.Int("records", len(records)),
		slog.Float64("invalid_rate", *invalidRate),
		slog.Int64("seed", *seed))
}
