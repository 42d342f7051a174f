package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"scorecli/internal/errors"
	"scorecli/pkg/contracts/domain"
)

// GeneratorConfig controls synthetic dataset generation.
type GeneratorConfig struct {
	NumRecords  int     `validate:"min=1"`
	InvalidRate float64 `validate:"min=0,max=1"` // fraction of malformed score cells
	Seed        int64
}

// DefaultGeneratorConfig matches the datasets the benchmarks expect:
// 100 records with a tenth of the scores malformed.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{NumRecords: 100, InvalidRate: 0.1, Seed: 1}
}

// IsValid checks the generator configuration.
func (gc GeneratorConfig) IsValid() bool {
	return gc.NumRecords > 0 && gc.InvalidRate >= 0 && gc.InvalidRate <= 1
}

var (
	generatorNames = []string{
		"Alice", "Bob", "Carol", "David", "Eve", "Frank", "Grace", "Heidi",
		"Ivan", "Judy", "Mallory", "Niaj", "Olivia", "Peggy", "Rupert", "Sybil",
	}
	generatorClasses  = []string{"A01", "A02", "B01", "B02", "C01"}
	generatorSubjects = []string{"Math", "Science", "English", "History", "Art"}

	// The malformed values real gradebooks contain: free text, blanks,
	// placeholders.
	malformedScores = []string{"SomeError", "", "N/A", "absent", "??"}
)

// Generate produces a deterministic synthetic record set for the given
// configuration. The same seed always yields the same dataset.
func Generate(cfg GeneratorConfig) []domain.ScoreRecord {
	rng := rand.New(rand.NewSource(cfg.Seed))

	records := make([]domain.ScoreRecord, cfg.NumRecords)
	for i := range records {
		raw := fmt.Sprintf("%.1f", rng.Float64()*100)
		if rng.Float64() < cfg.InvalidRate {
			raw = malformedScores[rng.Intn(len(malformedScores))]
		}
		records[i] = domain.ScoreRecord{
			Name:     fmt.Sprintf("%s %03d", generatorNames[rng.Intn(len(generatorNames))], i),
			Class:    generatorClasses[rng.Intn(len(generatorClasses))],
			Subject:  generatorSubjects[rng.Intn(len(generatorSubjects))],
			RawScore: raw,
		}
	}
	return records
}

// WriteDataset writes records as a student score CSV with the standard
// header, creating parent directories as needed.
func WriteDataset(ctx context.Context, path string, records []domain.ScoreRecord, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create dataset directory", err).WithContext("path", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create dataset file", err).WithContext("path", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Name", "Class", "Subject", "Score"}); err != nil {
		return errors.NewStorageError("failed to write dataset header", err)
	}
	for i, rec := range records {
		row := []string{rec.Name, rec.Class, rec.Subject, rec.RawScore}
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write dataset row %d", i+1), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush dataset", err)
	}

	logger.InfoContext(ctx, "wrote score dataset",
		slog.String("path", path),
		slog.Int("records", len(records)))

	return nil
}
