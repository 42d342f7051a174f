package domain

import "strings"

// ScoreRecord represents one row of a student score dataset.
// RawScore is kept as text because source files routinely contain
// non-numeric values ("SomeError", empty cells); normalization happens
// downstream in the grading pipeline.
type ScoreRecord struct {
	Name     string `json:"name" csv:"Name"`
	Class    string `json:"class" csv:"Class"`
	Subject  string `json:"subject" csv:"Subject"`
	RawScore string `json:"raw_score" csv:"Score"`
}

// HasGroupKeys reports whether the record carries the identifiers used
// for grouped aggregation.
func (r ScoreRecord) HasGroupKeys() bool {
	return strings.TrimSpace(r.Class) != "" && strings.TrimSpace(r.Subject) != ""
}
