// Package validation provides path checks shared by the CLI tools.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// datasetExtensions lists the loadable dataset formats.
var datasetExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
}

// PathValidator validates dataset and report paths before work starts,
// so the tools fail fast with a clear message.
type PathValidator struct {
	logger *slog.Logger
}

// NewPathValidator creates a path validator.
func NewPathValidator(logger *slog.Logger) *PathValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &PathValidator{logger: logger}
}

// ValidateDatasetPath checks that path exists, is a regular file, and
// has a loadable extension.
func (v *PathValidator) ValidateDatasetPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !datasetExtensions[ext] {
		v.logger.Error("Unsupported dataset format",
			slog.String("path", path),
			slog.String("extension", ext))
		return fmt.Errorf("unsupported dataset format %q (want .csv or .xlsx)", ext)
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Dataset does not exist", slog.String("path", path))
		return fmt.Errorf("dataset %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat dataset %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Dataset path is a directory", slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a dataset file", path)
	}
	if info.Size() == 0 {
		v.logger.Error("Dataset is empty", slog.String("path", path))
		return fmt.Errorf("dataset %s is empty", path)
	}

	return nil
}

// ValidateOutputDirectory ensures the directory holding path exists or
// can be created, and is writable.
func (v *PathValidator) ValidateOutputDirectory(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("test"), 0644); err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)

	return nil
}
