package grading

import (
	"scorecli/pkg/contracts/domain"
)

// Pipeline selects which aggregator implementation a run uses. Both
// produce identical summaries; the choice only matters for benchmarking
// the two traversal styles against each other.
type Pipeline string

const (
	// PipelineFold aggregates with a single imperative pass.
	PipelineFold Pipeline = "fold"
	// PipelineGrouped partitions records per group before reducing.
	PipelineGrouped Pipeline = "grouped"
)

// IsValid reports whether p names a known pipeline implementation.
func (p Pipeline) IsValid() bool {
	return p == PipelineFold || p == PipelineGrouped
}

// GradeRecords normalizes and classifies every record, preserving input
// order. Records are read-only inputs; the returned slice is freshly
// allocated.
func GradeRecords(records []domain.ScoreRecord, thresholds Thresholds) []GradedRecord {
	graded := make([]GradedRecord, len(records))
	for i, rec := range records {
		score := ParseScore(rec.RawScore)
		graded[i] = GradedRecord{
			ScoreRecord: rec,
			Score:       score,
			Grade:       thresholds.Classify(score),
		}
	}
	return graded
}

// Run executes the full pipeline over raw records: normalize, classify,
// aggregate. The graded records come back in input order alongside the
// summary.
func Run(records []domain.ScoreRecord, thresholds Thresholds, pipeline Pipeline) ([]GradedRecord, *Summary) {
	graded := GradeRecords(records, thresholds)

	var summary *Summary
	switch pipeline {
	case PipelineGrouped:
		summary = AggregateGrouped(graded)
	default:
		summary = Aggregate(graded)
	}

	return graded, summary
}
