package exporter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"scorecli/internal/errors"
)

// SummaryEnvelope is the JSON representation of a report: the summary
// and optional graded records wrapped with run metadata.
type SummaryEnvelope struct {
	ReportID    string     `json:"report_id"`
	GeneratedAt time.Time  `json:"generated_at"`
	Format      string     `json:"format"`
	Data        ReportData `json:"data"`
}

// envelopeFormat versions the JSON layout for downstream consumers.
const envelopeFormat = "score_summary_v1"

// NewEnvelope wraps report data with a fresh report ID and timestamp.
func NewEnvelope(data ReportData) SummaryEnvelope {
	return SummaryEnvelope{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Format:      envelopeFormat,
		Data:        data,
	}
}

// RenderJSON writes the enveloped report as indented JSON.
func RenderJSON(w io.Writer, data ReportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewEnvelope(data))
}

// WriteJSON writes the enveloped report to a file, creating parent
// directories as needed.
func WriteJSON(ctx context.Context, path string, data ReportData, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create report directory", err).WithContext("path", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create JSON report", err).WithContext("path", path)
	}
	defer file.Close()

	if err := RenderJSON(file, data); err != nil {
		return errors.NewStorageError("failed to encode JSON report", err)
	}

	logger.InfoContext(ctx, "wrote JSON report", slog.String("path", path))
	return nil
}
