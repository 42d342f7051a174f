// Package dataprocessing reads student score datasets into records and
// generates synthetic datasets for benchmarking.
//
// Loading is deliberately tolerant at the row level: short or empty rows
// are skipped with a warning, and score cells are passed through as raw
// text for the grading pipeline to normalize. Only file-level problems
// (missing file, unreadable content, unrecognizable header) surface as
// errors.
package dataprocessing
