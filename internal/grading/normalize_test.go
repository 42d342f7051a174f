package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantValue float64
	}{
		{
			name:      "plain integer",
			raw:       "90",
			wantValid: true,
			wantValue: 90,
		},
		{
			name:      "decimal",
			raw:       "59.99",
			wantValid: true,
			wantValue: 59.99,
		},
		{
			name:      "zero",
			raw:       "0",
			wantValid: true,
			wantValue: 0,
		},
		{
			name:      "negative",
			raw:       "-5",
			wantValid: true,
			wantValue: -5,
		},
		{
			name:      "scientific notation",
			raw:       "8.5e1",
			wantValid: true,
			wantValue: 85,
		},
		{
			name:      "surrounding whitespace",
			raw:       "  72.5\t",
			wantValid: true,
			wantValue: 72.5,
		},
		{
			name:      "empty string",
			raw:       "",
			wantValid: false,
		},
		{
			name:      "whitespace only",
			raw:       "   ",
			wantValid: false,
		},
		{
			name:      "non-numeric text",
			raw:       "SomeError",
			wantValid: false,
		},
		{
			name:      "trailing garbage",
			raw:       "90abc",
			wantValid: false,
		},
		{
			name:      "comma decimal separator",
			raw:       "72,5",
			wantValid: false,
		},
		{
			name:      "NaN rejected",
			raw:       "NaN",
			wantValid: false,
		},
		{
			name:      "positive infinity rejected",
			raw:       "+Inf",
			wantValid: false,
		},
		{
			name:      "negative infinity rejected",
			raw:       "-Inf",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ParseScore(tt.raw)

			assert.Equal(t, tt.wantValid, score.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, score.Value)
			}
		})
	}
}

func TestParseScoreNeverPanics(t *testing.T) {
	// A sampling of hostile inputs; all must come back as the invalid
	// marker without panicking.
	inputs := []string{"--", ".", "e", "0x10p", "\x00", "１００", "∞"}
	for _, in := range inputs {
		assert.False(t, ParseScore(in).Valid, "input %q", in)
	}
}
