package dataprocessing

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := GeneratorConfig{NumRecords: 50, InvalidRate: 0.2, Seed: 99}

	first := Generate(cfg)
	second := Generate(cfg)

	assert.Equal(t, first, second)
	assert.Len(t, first, 50)
}

func TestGenerateInvalidRate(t *testing.T) {
	tests := []struct {
		name        string
		invalidRate float64
		wantAllGood bool
		wantAllBad  bool
	}{
		{name: "no malformed cells", invalidRate: 0, wantAllGood: true},
		{name: "all malformed cells", invalidRate: 1, wantAllBad: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Generate(GeneratorConfig{NumRecords: 200, InvalidRate: tt.invalidRate, Seed: 5})

			parseable := 0
			for _, rec := range records {
				if _, err := strconv.ParseFloat(rec.RawScore, 64); err == nil {
					parseable++
				}
			}

			if tt.wantAllGood {
				assert.Equal(t, 200, parseable)
			}
			if tt.wantAllBad {
				assert.Equal(t, 0, parseable)
			}
		})
	}
}

func TestGenerateFieldsPopulated(t *testing.T) {
	for _, rec := range Generate(DefaultGeneratorConfig()) {
		assert.NotEmpty(t, rec.Name)
		assert.NotEmpty(t, rec.Class)
		assert.NotEmpty(t, rec.Subject)
		assert.True(t, rec.HasGroupKeys())
	}
}

func TestGeneratorConfigIsValid(t *testing.T) {
	assert.True(t, DefaultGeneratorConfig().IsValid())
	assert.False(t, GeneratorConfig{NumRecords: 0, InvalidRate: 0.1}.IsValid())
	assert.False(t, GeneratorConfig{NumRecords: 10, InvalidRate: 1.5}.IsValid())
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "student_scores_25.csv")

	records := Generate(GeneratorConfig{NumRecords: 25, InvalidRate: 0.3, Seed: 7})
	require.NoError(t, WriteDataset(ctx, path, records, nil))

	loaded, err := LoadCSV(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}
