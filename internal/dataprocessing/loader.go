package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"scorecli/internal/errors"
	"scorecli/pkg/contracts/domain"
)

// columnMap holds the positions of the required dataset columns.
type columnMap struct {
	name, class, subject, score int
}

// mapColumns locates the required columns in a header row by name,
// case-insensitively. Column order in the source file does not matter.
func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{name: -1, class: -1, subject: -1, score: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			cols.name = i
		case "class":
			cols.class = i
		case "subject":
			cols.subject = i
		case "score":
			cols.score = i
		}
	}
	if cols.name < 0 || cols.class < 0 || cols.subject < 0 || cols.score < 0 {
		return cols, fmt.Errorf("header must contain Name, Class, Subject and Score columns, got %v", header)
	}
	return cols, nil
}

// rowToRecord extracts a record from a data row, tolerating missing
// trailing cells. The score cell stays raw text; normalization belongs
// to the grading pipeline.
func (c columnMap) rowToRecord(row []string) domain.ScoreRecord {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}
	return domain.ScoreRecord{
		Name:     cell(c.name),
		Class:    cell(c.class),
		Subject:  cell(c.subject),
		RawScore: cell(c.score),
	}
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Load reads a score dataset, dispatching on the file extension.
// CSV and XLSX sources are supported.
func Load(ctx context.Context, path string, logger *slog.Logger) ([]domain.ScoreRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(ctx, path, logger)
	default:
		return LoadCSV(ctx, path, logger)
	}
}

// LoadCSV reads a student score CSV file into records, preserving row
// order. The first row must be a header naming the four dataset columns.
func LoadCSV(ctx context.Context, path string, logger *slog.Logger) ([]domain.ScoreRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open dataset", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // rows are validated individually

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParsingError("dataset is empty", nil).WithContext("path", path)
	}
	if err != nil {
		return nil, errors.NewParsingError("failed to read dataset header", err).WithContext("path", path)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, errors.NewParsingError("unrecognized dataset header", err).WithContext("path", path)
	}

	var records []domain.ScoreRecord
	rowNum := 1
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, errors.NewParsingError("failed to read dataset row", err).WithContext("row", rowNum)
		}
		if isEmptyRow(row) {
			skipped++
			logger.WarnContext(ctx, "skipping empty row", slog.Int("row", rowNum))
			continue
		}
		records = append(records, cols.rowToRecord(row))
	}

	logger.InfoContext(ctx, "loaded score dataset",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("skipped_rows", skipped))

	return records, nil
}

// LoadXLSX reads a student score dataset from an Excel workbook. The
// header row is located by scanning the sheets for one that names the
// four dataset columns.
func LoadXLSX(ctx context.Context, path string, logger *slog.Logger) ([]domain.ScoreRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		cols, err := mapColumns(rows[0])
		if err != nil {
			continue
		}

		logger.InfoContext(ctx, "found score data in sheet",
			slog.String("sheet", sheet),
			slog.Int("rows", len(rows)-1))

		var records []domain.ScoreRecord
		for i, row := range rows[1:] {
			if isEmptyRow(row) {
				logger.WarnContext(ctx, "skipping empty row", slog.Int("row", i+2))
				continue
			}
			records = append(records, cols.rowToRecord(row))
		}
		return records, nil
	}

	return nil, errors.NewParsingError("no sheet with Name, Class, Subject and Score columns", nil).
		WithContext("path", path)
}
