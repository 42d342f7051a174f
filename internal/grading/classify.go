package grading

// Thresholds holds the inclusive lower bounds of the passing grades,
// evaluated in descending order. A score below D is an F.
type Thresholds struct {
	A float64 `json:"a" yaml:"a" validate:"gtfield=B"`
	B float64 `json:"b" yaml:"b" validate:"gtfield=C"`
	C float64 `json:"c" yaml:"c" validate:"gtfield=D"`
	D float64 `json:"d" yaml:"d"`
}

// DefaultThresholds returns the standard 90/80/70/60 grading scale.
func DefaultThresholds() Thresholds {
	return Thresholds{A: 90, B: 80, C: 70, D: 60}
}

// IsValid reports whether the thresholds are strictly descending.
func (t Thresholds) IsValid() bool {
	return t.A > t.B && t.B > t.C && t.C > t.D
}

// Classify maps a normalized score to its grade. Boundaries are closed
// on the lower end: a score exactly at a threshold earns that grade.
// Invalid scores always classify as GradeError, keeping the
// grade/validity invariant total over every possible input.
func (t Thresholds) Classify(s Score) Grade {
	if !s.Valid {
		return GradeError
	}
	switch {
	case s.Value >= t.A:
		return GradeA
	case s.Value >= t.B:
		return GradeB
	case s.Value >= t.C:
		return GradeC
	case s.Value >= t.D:
		return GradeD
	default:
		return GradeF
	}
}

// Classify maps a normalized score to its grade using the default scale.
func Classify(s Score) Grade {
	return DefaultThresholds().Classify(s)
}
