package grading

// Accumulate folds graded records into sum/count accumulators, one pass,
// any order. Valid scores feed three accumulators (overall, class,
// subject); invalid scores only increment InvalidCount. Accumulators for
// a group key are created lazily the first time a valid score is seen
// for it, so empty groups never exist.
func Accumulate(records []GradedRecord) *Accumulation {
	acc := NewAccumulation()
	for _, rec := range records {
		acc.fold(rec)
	}
	return acc
}

func (a *Accumulation) fold(rec GradedRecord) {
	if !rec.Score.Valid {
		a.InvalidCount++
		return
	}

	a.Overall.Add(rec.Score.Value)

	cls := a.ByClass[rec.Class]
	cls.Add(rec.Score.Value)
	a.ByClass[rec.Class] = cls

	subj := a.BySubject[rec.Subject]
	subj.Add(rec.Score.Value)
	a.BySubject[rec.Subject] = subj
}

// Merge combines two accumulations by pairwise sum/count addition,
// returning a new accumulation. Merging the accumulations of disjoint
// record sets is equivalent to accumulating their concatenation.
func (a *Accumulation) Merge(other *Accumulation) *Accumulation {
	merged := NewAccumulation()
	merged.Overall = a.Overall.Merge(other.Overall)
	merged.InvalidCount = a.InvalidCount + other.InvalidCount

	for k, v := range a.ByClass {
		merged.ByClass[k] = v
	}
	for k, v := range other.ByClass {
		merged.ByClass[k] = merged.ByClass[k].Merge(v)
	}
	for k, v := range a.BySubject {
		merged.BySubject[k] = v
	}
	for k, v := range other.BySubject {
		merged.BySubject[k] = merged.BySubject[k].Merge(v)
	}

	return merged
}

// Summarize derives the immutable Summary from the accumulated state.
func (a *Accumulation) Summarize() *Summary {
	s := &Summary{
		Overall:      a.Overall.Mean(),
		ClassMeans:   make(map[string]float64, len(a.ByClass)),
		SubjectMeans: make(map[string]float64, len(a.BySubject)),
		ValidCount:   a.Overall.Count,
		InvalidCount: a.InvalidCount,
	}
	for k, g := range a.ByClass {
		s.ClassMeans[k] = g.Mean().Value
	}
	for k, g := range a.BySubject {
		s.SubjectMeans[k] = g.Mean().Value
	}
	return s
}

// Aggregate computes summary statistics with a single imperative fold
// over the records.
func Aggregate(records []GradedRecord) *Summary {
	return Accumulate(records).Summarize()
}

// AggregateGrouped computes the same summary by first partitioning the
// valid records per group and then reducing each partition. It exists as
// the declarative counterpart to Aggregate; both satisfy the same
// contract and produce identical summaries for any input order.
func AggregateGrouped(records []GradedRecord) *Summary {
	valid := make([]GradedRecord, 0, len(records))
	invalid := 0
	for _, rec := range records {
		if rec.Score.Valid {
			valid = append(valid, rec)
		} else {
			invalid++
		}
	}

	byClass := groupBy(valid, func(r GradedRecord) string { return r.Class })
	bySubject := groupBy(valid, func(r GradedRecord) string { return r.Subject })

	acc := NewAccumulation()
	acc.InvalidCount = invalid
	acc.Overall = reduce(valid)
	for k, group := range byClass {
		acc.ByClass[k] = reduce(group)
	}
	for k, group := range bySubject {
		acc.BySubject[k] = reduce(group)
	}

	return acc.Summarize()
}

func groupBy(records []GradedRecord, key func(GradedRecord) string) map[string][]GradedRecord {
	groups := make(map[string][]GradedRecord)
	for _, rec := range records {
		k := key(rec)
		groups[k] = append(groups[k], rec)
	}
	return groups
}

func reduce(records []GradedRecord) GroupStat {
	var stat GroupStat
	for _, rec := range records {
		stat.Add(rec.Score.Value)
	}
	return stat
}
