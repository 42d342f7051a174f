package exporter

import (
	"fmt"
	"io"
	"strings"

	"scorecli/internal/grading"
)

// ReportData bundles everything a rendered report needs.
type ReportData struct {
	Summary *grading.Summary       `json:"summary"`
	Records []grading.GradedRecord `json:"records,omitempty"`
}

// RenderText writes the human-readable summary report. Group sections
// are sorted by key; a missing overall mean renders as N/A rather than
// zero.
func RenderText(w io.Writer, data ReportData) error {
	s := data.Summary

	var b strings.Builder
	b.WriteString("STUDENT SCORE SUMMARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	if s.Overall.Valid {
		fmt.Fprintf(&b, "Overall Average Score: %s\n", formatFloat(s.Overall.Value))
	} else {
		b.WriteString("Overall Average Score: N/A (no valid scores)\n")
	}
	fmt.Fprintf(&b, "Valid Scores Processed: %d\n", s.ValidCount)
	fmt.Fprintf(&b, "Invalid Scores: %d\n", s.InvalidCount)

	b.WriteString("\nClass Averages:\n")
	for _, class := range sortedKeys(s.ClassMeans) {
		fmt.Fprintf(&b, "  %s: %s\n", class, formatFloat(s.ClassMeans[class]))
	}

	b.WriteString("\nSubject Averages:\n")
	for _, subject := range sortedKeys(s.SubjectMeans) {
		fmt.Fprintf(&b, "  %s: %s\n", subject, formatFloat(s.SubjectMeans[subject]))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
