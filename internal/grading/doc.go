// Package grading implements the score cleaning, grading and aggregation
// pipeline for student score datasets.
//
// The pipeline has three stages, applied per record and then reduced
// across records:
//
//  1. Normalization: a raw score cell (text, possibly malformed) becomes
//     either a valid numeric Score or an explicit invalid marker. Parse
//     failures never surface as errors.
//  2. Classification: a normalized Score maps to a letter Grade through
//     fixed, inclusive lower-bound thresholds (90/80/70/60). Invalid
//     scores always classify as GradeError.
//  3. Aggregation: valid scores accumulate into sum/count pairs keyed by
//     class, by subject and overall; means are derived at the end.
//
// # Architecture
//
//   - types.go: Score, Grade, GradedRecord, GroupStat, Summary
//   - normalize.go: tolerant numeric parsing
//   - classify.go: threshold table and classification
//   - aggregate.go: fold and group-by aggregator implementations, merging
//   - pipeline.go: per-record orchestration
//
// Two aggregator implementations are provided, Aggregate (a single
// imperative fold) and AggregateGrouped (group records first, reduce each
// group), with identical observable behavior. Aggregation is
// order-independent: only sums and counts are accumulated, so any
// permutation of the input, or a merge of partial Accumulations, yields
// the same Summary.
//
// A group with zero valid scores is absent from the output maps, not
// present with a zero mean. Callers must treat absence as a defined,
// non-error state.
//
// # Usage Example
//
//	records, err := dataprocessing.LoadCSV(ctx, "data/student_scores_100.csv", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	graded := grading.GradeRecords(records, grading.DefaultThresholds())
//	summary := grading.Aggregate(graded)
//
//	fmt.Printf("overall mean: %.2f (%d valid, %d invalid)\n",
//	    summary.Overall.Value, summary.ValidCount, summary.InvalidCount)
package grading
