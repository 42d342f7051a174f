package exporter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"scorecli/internal/errors"
)

// Sheet names used in workbook reports.
const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

// WriteXLSX writes a two-sheet Excel workbook: graded records and group
// means. Layout mirrors the CSV exports so the formats stay
// interchangeable.
func WriteXLSX(ctx context.Context, path string, data ReportData, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create report directory", err).WithContext("path", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the records sheet.
	if err := f.SetSheetName(f.GetSheetName(0), recordsSheet); err != nil {
		return errors.NewStorageError("failed to name records sheet", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.NewStorageError("failed to create summary sheet", err)
	}

	recordRows := [][]interface{}{{"Name", "Class", "Subject", "Score", "Grade"}}
	for _, rec := range data.Records {
		recordRows = append(recordRows, []interface{}{rec.Name, rec.Class, rec.Subject, formatScore(rec.Score), string(rec.Grade)})
	}
	if err := writeSheet(f, recordsSheet, recordRows); err != nil {
		return err
	}

	s := data.Summary
	summaryRows := [][]interface{}{{"Group", "Key", "Mean", "Count"}}
	if s.Overall.Valid {
		summaryRows = append(summaryRows, []interface{}{"overall", "", formatFloat(s.Overall.Value), s.ValidCount})
	}
	for _, class := range sortedKeys(s.ClassMeans) {
		summaryRows = append(summaryRows, []interface{}{"class", class, formatFloat(s.ClassMeans[class]), ""})
	}
	for _, subject := range sortedKeys(s.SubjectMeans) {
		summaryRows = append(summaryRows, []interface{}{"subject", subject, formatFloat(s.SubjectMeans[subject]), ""})
	}
	if err := writeSheet(f, summarySheet, summaryRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}

	logger.InfoContext(ctx, "wrote XLSX report",
		slog.String("path", path),
		slog.Int("records", len(data.Records)))

	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.NewStorageError("failed to compute cell coordinates", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.NewStorageError("failed to write sheet row", err).WithContext("sheet", sheet)
		}
	}
	return nil
}
