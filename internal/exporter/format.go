package exporter

import (
	"fmt"
	"sort"

	"scorecli/internal/grading"
)

// formatFloat formats a float64 value for report output with exactly 2
// decimal places, so 85.5 renders as 85.50.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatScore renders a normalized score, or an empty cell for the
// invalid marker.
func formatScore(s grading.Score) string {
	if !s.Valid {
		return ""
	}
	return formatFloat(s.Value)
}

// sortedKeys returns the map keys in lexical order for deterministic
// report sections.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
