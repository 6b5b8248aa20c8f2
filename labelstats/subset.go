package labelstats

// Subset is the statistics-subset object returned by
// Statistics.CreateSubset (spec.md §4.1, component C4a). It maintains
// four local per-slot counters derived from the parent Statistics:
// covered, uncovered, and their "accumulated" variants used for nominal
// features where per-value buckets are scored against the union of all
// buckets seen so far.
//
// A fresh Subset starts "empty": covered is a snapshot of the parent's
// committed Prediction and uncovered is a snapshot of the parent's
// TotalPrediction (spec.md §4.4 Setup: "Create an empty statistics
// subset").
type Subset struct {
	stats        *Statistics
	labelIndices LabelIndices

	covered   []uint32
	uncovered []uint32

	accumCovered   []uint32
	accumUncovered []uint32
	hasAccum       bool
}

func newSubset(stats *Statistics, labelIndices LabelIndices) *Subset {
	uncovered := append([]uint32(nil), stats.TotalPrediction()...)

	return &Subset{
		stats:        stats,
		labelIndices: labelIndices,
		covered:      append([]uint32(nil), stats.Prediction()...),
		uncovered:    uncovered,
	}
}

// LabelIndices returns the label projection this subset was created for.
func (s *Subset) LabelIndices() LabelIndices { return s.labelIndices }

// GroundTruth returns the parent statistics' per-time-slot ground-truth
// count vector.
func (s *Subset) GroundTruth() []uint32 { return s.stats.GroundTruth() }

// AddToMissing records that example i (weight w) has a missing feature
// value and so cannot be assigned to either side of a split: its
// contribution is removed from the uncovered tally (spec.md §4.1).
func (s *Subset) AddToMissing(i uint32, w float64) {
	if s.stats.coverageCount[i] != 0 {
		return
	}
	s.uncovered[s.stats.TimeSlotOf(i)]--
}

// AddToSubset moves example i (weight w) from the uncovered side to the
// covered side, mirroring the same delta into the accumulated
// counters if resetSubset has run at least once (spec.md §4.1).
func (s *Subset) AddToSubset(i uint32, w float64) {
	if s.stats.coverageCount[i] != 0 {
		return
	}

	t := s.stats.TimeSlotOf(i)
	s.covered[t]++
	s.uncovered[t]--

	if s.hasAccum {
		s.accumCovered[t]++
		s.accumUncovered[t]--
	}
}

// ResetSubset snapshots the current (covered, uncovered) pair into the
// accumulators the first time it is called, then reloads (covered,
// uncovered) to the subset's baseline: covered to a fresh copy of the
// parent's Prediction, uncovered to a fresh copy of the parent's
// TotalPrediction. Used between nominal
// value groups, so each group starts scoring from the same baseline
// while the accumulators keep the running union across groups
// (spec.md §4.1, §4.4 Phase A step 3).
func (s *Subset) ResetSubset() {
	if !s.hasAccum {
		s.accumCovered = append([]uint32(nil), s.covered...)
		s.accumUncovered = append([]uint32(nil), s.uncovered...)
		s.hasAccum = true
	}

	copy(s.covered, s.stats.Prediction())
	copy(s.uncovered, s.stats.TotalPrediction())
}

// CalculateLabelWisePrediction selects one of the four per-slot counter
// vectors (spec.md §4.1): covered, uncovered, or their accumulated
// variants. The returned slice is read-only; callers (headrefine) hand
// it to quality.Evaluate without copying.
func (s *Subset) CalculateLabelWisePrediction(uncovered, accumulated bool) []uint32 {
	switch {
	case !uncovered && !accumulated:
		return s.covered
	case uncovered && !accumulated:
		return s.uncovered
	case !uncovered && accumulated:
		return s.accumCovered
	default:
		return s.accumUncovered
	}
}
