// Package exporter renders grading summaries and graded records into
// user-facing formats: console text, CSV, JSON and Excel workbooks.
//
// The exporter consumes the structured output of the grading pipeline
// and never computes statistics itself. Group sections are sorted by key
// so repeated runs over the same data produce byte-identical output.
package exporter
