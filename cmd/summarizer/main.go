package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scorecli/internal/config"
	"scorecli/internal/dataprocessing"
	"scorecli/internal/exporter"
	"scorecli/internal/grading"
	"scorecli/internal/infrastructure"
	"scorecli/internal/validation"
)

func main() {
	inPath := flag.String("in", "", "input dataset path (.csv or .xlsx); overrides -n")
	numRecords := flag.Int("n", 100, "record count selecting the conventional dataset, e.g. data/student_scores_100.csv")
	pipelineFlag := flag.String("pipeline", "", "aggregation pipeline: fold or grouped (defaults to config)")
	format := flag.String("format", "text", "output format: text, json, csv, or xlsx")
	outPath := flag.String("out", "", "output path (defaults to stdout for text/json, the reports directory otherwise)")
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

	pipeline := cfg.Pipeline()
	if *pipelineFlag != "" {
		pipeline = grading.Pipeline(*pipelineFlag)
	}
	if !pipeline.IsValid() {
		logger.Error("Invalid pipeline", slog.String("pipeline", string(pipeline)))
		os.Exit(1)
	}

	input := *inPath
	if input == "" {
		input = cfg.Paths.DatasetPath(*numRecords)
	}

	validator := validation.NewPathValidator(logger)
	if err := validator.ValidateDatasetPath(input); err != nil {
		logger.Error("Dataset validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *outPath != "" {
		if err := validator.ValidateOutputDirectory(*outPath); err != nil {
			logger.Error("Output validation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx := context.Background()
	start := time.Now()

	records, err := dataprocessing.Load(ctx, input, logger)
	if err != nil {
		logger.Error("Failed to load dataset",
			slog.String("path", input),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	graded, summary := grading.Run(records, cfg.Grading.Thresholds, pipeline)
	data := exporter.ReportData{Summary: summary, Records: graded}

	logger.Info("Dataset summarized",
		slog.String("path", input),
		slog.String("pipeline", string(pipeline)),
		slog.Int("valid", summary.ValidCount),
		slog.Int("invalid", summary.InvalidCount),
		slog.Duration("elapsed", time.Since(start)))

	if err := export(ctx, cfg, data, strings.ToLower(*format), *outPath, logger); err != nil {
		logger.Error("Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func export(ctx context.Context, cfg *config.Config, data exporter.ReportData, format, out string, logger *slog.Logger) error {
	switch format {
	case "text":
		if out == "" {
			return exporter.RenderText(os.Stdout, data)
		}
		file, err := createReportFile(out)
		if err != nil {
			return err
		}
		defer file.Close()
		return exporter.RenderText(file, data)

	case "json":
		if out == "" {
			return exporter.RenderJSON(os.Stdout, data)
		}
		return exporter.WriteJSON(ctx, out, data, logger)

	case "csv":
		if out == "" {
			out = cfg.Paths.ReportPath("summary.csv")
		}
		if err := exporter.WriteSummaryCSV(ctx, out, data.Summary, logger); err != nil {
			return err
		}
		recordsPath := strings.TrimSuffix(out, filepath.Ext(out)) + "_records.csv"
		return exporter.WriteGradedCSV(ctx, recordsPath, data.Records, logger)

	case "xlsx":
		if out == "" {
			out = cfg.Paths.ReportPath("report.xlsx")
		}
		return exporter.WriteXLSX(ctx, out, data, logger)

	default:
		return fmt.Errorf("unknown format %q (want text, json, csv, or xlsx)", format)
	}
}

func createReportFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}
