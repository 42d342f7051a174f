package validation

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *PathValidator {
	return NewPathValidator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestValidateDatasetPath(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "scores.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Name,Class,Subject,Score\n"), 0644))

	v := newValidator()
	assert.NoError(t, v.ValidateDatasetPath(csvPath))
}

func TestValidateDatasetPathErrors(t *testing.T) {
	dir := t.TempDir()
	emptyPath := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0644))

	v := newValidator()

	tests := []struct {
		name string
		path string
	}{
		{"unsupported extension", filepath.Join(dir, "scores.txt")},
		{"missing file", filepath.Join(dir, "missing.csv")},
		{"directory", filepath.Join(dir, "data.csv")},
		{"empty file", emptyPath},
	}

	require.NoError(t, os.Mkdir(tests[2].path, 0755))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.ValidateDatasetPath(tt.path))
		})
	}
}

func TestValidateOutputDirectory(t *testing.T) {
	v := newValidator()
	out := filepath.Join(t.TempDir(), "reports", "nested", "summary.csv")
	require.NoError(t, v.ValidateOutputDirectory(out))
	assert.DirExists(t, filepath.Dir(out))
}
