package services

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"scorecli/internal/config"
	"scorecli/internal/dataprocessing"
	"scorecli/internal/exporter"
	"scorecli/internal/grading"
)

var (
	recordsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scorecli_records_processed_total",
		Help: "Total score records run through the grading pipeline.",
	})
	invalidScores = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scorecli_invalid_scores_total",
		Help: "Total records whose score cell failed to parse.",
	})
)

// ReportService loads stored score datasets and runs the grading
// pipeline over them.
type ReportService struct {
	paths      config.PathsConfig
	thresholds grading.Thresholds
	logger     *slog.Logger
}

// NewReportService creates a report service over the configured data
// directory and grade thresholds.
func NewReportService(paths config.PathsConfig, thresholds grading.Thresholds, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		paths:      paths,
		thresholds: thresholds,
		logger:     logger.With(slog.String("service", "report")),
	}
}

// Summarize loads the dataset at path and runs the requested pipeline,
// returning the graded records and their summary.
func (s *ReportService) Summarize(ctx context.Context, path string, pipeline grading.Pipeline) (exporter.ReportData, error) {
	records, err := dataprocessing.Load(ctx, path, s.logger)
	if err != nil {
		return exporter.ReportData{}, err
	}

	graded, summary := grading.Run(records, s.thresholds, pipeline)

	recordsProcessed.Add(float64(summary.TotalCount()))
	invalidScores.Add(float64(summary.InvalidCount))

	s.logger.InfoContext(ctx, "dataset summarized",
		slog.String("path", path),
		slog.String("pipeline", string(pipeline)),
		slog.Int("valid", summary.ValidCount),
		slog.Int("invalid", summary.InvalidCount))

	return exporter.ReportData{Summary: summary, Records: graded}, nil
}

// SummarizeDataset resolves the conventional dataset path for the
// given record count and summarizes it.
func (s *ReportService) SummarizeDataset(ctx context.Context, numRecords int, pipeline grading.Pipeline) (exporter.ReportData, error) {
	return s.Summarize(ctx, s.paths.DatasetPath(numRecords), pipeline)
}
