package grading

import (
	"scorecli/pkg/contracts/domain"
)

// Score is a normalized score value. It is a tagged variant rather than a
// nullable float: Valid is false when the raw cell could not be parsed,
// and Value is meaningful only while Valid is true.
type Score struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// ValidScore returns a Score carrying the given numeric value.
func ValidScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

// InvalidScore returns the explicit invalid marker.
func InvalidScore() Score {
	return Score{}
}

// Grade is the categorical label derived from a normalized score.
type Grade string

const (
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
	GradeError Grade = "Error"
)

// IsValid reports whether g is one of the defined grade labels.
func (g Grade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeF, GradeError:
		return true
	}
	return false
}

// GradedRecord is an input record annotated with its normalized score and
// grade. Invariant: Grade == GradeError exactly when Score is invalid.
type GradedRecord struct {
	domain.ScoreRecord
	Score Score `json:"score"`
	Grade Grade `json:"grade"`
}

// GroupStat is a running sum/count accumulator for one group.
// Mean is undefined while Count is zero.
type GroupStat struct {
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// Add folds one valid score into the accumulator.
func (g *GroupStat) Add(v float64) {
	g.Sum += v
	g.Count++
}

// Merge combines two accumulators by pairwise addition. Addition is
// associative and commutative, so partial aggregations over disjoint
// record sets merge into the same result as a single pass.
func (g GroupStat) Merge(other GroupStat) GroupStat {
	return GroupStat{Sum: g.Sum + other.Sum, Count: g.Count + other.Count}
}

// Mean returns the arithmetic mean, or an invalid Score when the group
// has no observations.
func (g GroupStat) Mean() Score {
	if g.Count == 0 {
		return InvalidScore()
	}
	return ValidScore(g.Sum / float64(g.Count))
}

// Accumulation holds the intermediate state of one aggregation pass.
// It is exclusively owned by the aggregator for the duration of the pass
// and must not be shared across concurrent passes.
type Accumulation struct {
	Overall      GroupStat            `json:"overall"`
	ByClass      map[string]GroupStat `json:"by_class"`
	BySubject    map[string]GroupStat `json:"by_subject"`
	InvalidCount int                  `json:"invalid_count"`
}

// NewAccumulation returns an empty accumulation ready for folding.
func NewAccumulation() *Accumulation {
	return &Accumulation{
		ByClass:   make(map[string]GroupStat),
		BySubject: make(map[string]GroupStat),
	}
}

// Summary is the immutable result of aggregating a record set.
// Group keys appear in the mean maps only when at least one valid score
// was observed for them; Overall is the invalid Score when ValidCount is
// zero.
type Summary struct {
	Overall      Score              `json:"overall"`
	ClassMeans   map[string]float64 `json:"class_means"`
	SubjectMeans map[string]float64 `json:"subject_means"`
	ValidCount   int                `json:"valid_count"`
	InvalidCount int                `json:"invalid_count"`
}

// TotalCount returns the number of records the summary was built from.
func (s *Summary) TotalCount() int {
	return s.ValidCount + s.InvalidCount
}
