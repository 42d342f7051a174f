package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"scorecli/internal/errors"
	"scorecli/internal/grading"
)

// utf8BOM helps Excel recognize UTF-8 encoded CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteGradedCSV writes the graded records in input order, one row per
// record. Invalid scores render as empty cells next to their Error
// grade.
func WriteGradedCSV(ctx context.Context, path string, records []grading.GradedRecord, logger *slog.Logger) error {
	header := []string{"Name", "Class", "Subject", "Score", "Grade"}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{rec.Name, rec.Class, rec.Subject, formatScore(rec.Score), string(rec.Grade)}
	}
	return writeCSV(ctx, path, header, rows, logger)
}

// WriteSummaryCSV writes the group means as a flat Group/Key/Mean/Count
// table. Groups without valid scores are absent, matching the Summary
// contract.
func WriteSummaryCSV(ctx context.Context, path string, summary *grading.Summary, logger *slog.Logger) error {
	header := []string{"Group", "Key", "Mean", "Count"}

	var rows [][]string
	if summary.Overall.Valid {
		rows = append(rows, []string{"overall", "", formatFloat(summary.Overall.Value), strconv.Itoa(summary.ValidCount)})
	}
	for _, class := range sortedKeys(summary.ClassMeans) {
		rows = append(rows, []string{"class", class, formatFloat(summary.ClassMeans[class]), ""})
	}
	for _, subject := range sortedKeys(summary.SubjectMeans) {
		rows = append(rows, []string{"subject", subject, formatFloat(summary.SubjectMeans[subject]), ""})
	}

	return writeCSV(ctx, path, header, rows, logger)
}

// writeCSV writes a BOM-prefixed CSV file, creating parent directories
// as needed.
func writeCSV(ctx context.Context, path string, header []string, rows [][]string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create report directory", err).WithContext("path", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV report", err).WithContext("path", path)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return errors.NewStorageError("failed to write BOM", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return errors.NewStorageError("failed to write CSV header", err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write CSV row %d", i+1), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV report", err)
	}

	logger.InfoContext(ctx, "wrote CSV report",
		slog.String("path", path),
		slog.Int("rows", len(rows)))

	return nil
}
