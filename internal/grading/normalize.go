package grading

import (
	"math"
	"strconv"
	"strings"
)

// ParseScore converts a raw score cell into a normalized Score.
//
// The canonical parse rule is strconv.ParseFloat over the
// whitespace-trimmed cell, so plain decimals and scientific notation are
// accepted. NaN and infinities parse but are not usable scores and are
// rejected. Anything else, including empty cells, yields the invalid
// marker. ParseScore never returns an error; tolerance for malformed
// input lives entirely here.
func ParseScore(raw string) Score {
	s := strings.TrimSpace(raw)
	if s == "" {
		return InvalidScore()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return InvalidScore()
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidScore()
	}

	return ValidScore(v)
}
