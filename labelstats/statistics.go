package labelstats

import "github.com/mrapp-ke/SyndromeLearner/ports"

// Statistics is the label-wise statistics state that drives search
// (spec.md §3, §4.1, component C4) for a fixed ground-truth count
// vector G over T time slots.
//
// Invariants (spec.md §3):
//   - At rest (no rule being grown), totalPrediction equals prediction.
//   - prediction[t] <= len(examples in slot t).
//   - coverageCount is monotonically non-decreasing over training.
type Statistics struct {
	numExamples  int
	numTimeSlots int

	groundTruth []uint32
	timeSlotOf  []uint32
	slotRanges  []ports.IndexRange

	coverageCount   []uint32
	totalPrediction []uint32
	prediction      []uint32
}

// New builds a Statistics from a LabelMatrix. It returns
// ErrNoExamples/ErrNoTimeSlots for the contract violations named in
// spec.md §7, and ErrBadPartition if indicesByTimeSlot does not cover
// every example index exactly once.
func New(lm ports.LabelMatrix) (*Statistics, error) {
	n := lm.NumRows()
	t := lm.NumTimeSlots()
	if n == 0 {
		return nil, ErrNoExamples
	}
	if t == 0 {
		return nil, ErrNoTimeSlots
	}

	ranges := lm.IndicesByTimeSlot()
	timeSlotOf := make([]uint32, n)
	var covered int
	for slot, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			if int(i) >= n {
				return nil, ErrBadPartition
			}
			timeSlotOf[i] = uint32(slot)
		}
		covered += int(r.End - r.Start)
	}
	if covered != n {
		return nil, ErrBadPartition
	}

	groundTruth := append([]uint32(nil), lm.ValuesByTimeSlot()...)

	s := &Statistics{
		numExamples:     n,
		numTimeSlots:    t,
		groundTruth:     groundTruth,
		timeSlotOf:      timeSlotOf,
		slotRanges:      ranges,
		coverageCount:   make([]uint32, n),
		totalPrediction: make([]uint32, t),
		prediction:      make([]uint32, t),
	}

	return s, nil
}

// NumExamples returns N.
func (s *Statistics) NumExamples() int { return s.numExamples }

// NumTimeSlots returns T. Implements ports.StatisticsView.
func (s *Statistics) NumTimeSlots() int { return s.numTimeSlots }

// GroundTruth returns the per-time-slot ground-truth count vector.
// Callers must not mutate it.
func (s *Statistics) GroundTruth() []uint32 { return s.groundTruth }

// TimeSlotOf returns the zero-based time-slot index example i belongs to.
func (s *Statistics) TimeSlotOf(i uint32) uint32 { return s.timeSlotOf[i] }

// SlotRange returns the [start, end) example-index range for time slot t.
func (s *Statistics) SlotRange(t int) ports.IndexRange { return s.slotRanges[t] }

// CoverageCount returns, per example, how many committed rules cover it.
// Callers must not mutate it. Implements ports.StatisticsView.
func (s *Statistics) CoverageCount() []uint32 { return s.coverageCount }

// Prediction returns the committed per-time-slot prediction vector.
// Callers must not mutate it. Implements ports.StatisticsView.
func (s *Statistics) Prediction() []uint32 { return s.prediction }

// TotalPrediction returns the tentative per-time-slot prediction vector
// the next candidate would produce if nothing else changed. Callers must
// not mutate it.
func (s *Statistics) TotalPrediction() []uint32 { return s.totalPrediction }

// ResetSampledStatistics copies prediction into totalPrediction,
// re-establishing the at-rest invariant before a new rule begins
// (spec.md §4.1). ResetCoveredStatistics is its alias (spec.md §4.1: the
// two operations are equivalent).
func (s *Statistics) ResetSampledStatistics() {
	copy(s.totalPrediction, s.prediction)
}

// ResetCoveredStatistics is equivalent to ResetSampledStatistics
// (spec.md §4.1).
func (s *Statistics) ResetCoveredStatistics() {
	s.ResetSampledStatistics()
}

// AddSampledStatistic tentatively adds example i (weight w) to the
// current sub-sample's prediction tally. If i is already covered by a
// committed rule (coverageCount[i] > 0), it contributes nothing new
// (spec.md §4.1). Weight w is accepted for interface symmetry with
// UpdateCoveredStatistic but does not scale the unit contribution: a
// time slot's predicted count is "number of covered distinct examples in
// the slot", not a weighted sum (spec.md §4.1).
func (s *Statistics) AddSampledStatistic(i uint32, w float64) {
	if s.coverageCount[i] != 0 {
		return
	}
	s.totalPrediction[s.timeSlotOf[i]]++
}

// UpdateCoveredStatistic is AddSampledStatistic's complement-aware form:
// if remove is true, it decrements instead of increments. Semantically
// identical to AddSampledStatistic/addSampledStatistic in this
// single-label instantiation (spec.md §9 Open Questions); kept as a
// distinct method because callers (thresholds.Subset.FilterThresholds) need
// the explicit add/remove direction.
func (s *Statistics) UpdateCoveredStatistic(i uint32, w float64, remove bool) {
	if s.coverageCount[i] != 0 {
		return
	}
	if remove {
		s.totalPrediction[s.timeSlotOf[i]]--
	} else {
		s.totalPrediction[s.timeSlotOf[i]]++
	}
}

// IncreaseCoverageCount records that one more committed rule covers
// example i.
func (s *Statistics) IncreaseCoverageCount(i uint32) {
	s.coverageCount[i]++
}

// UpdatePredictions recomputes prediction[t] as the number of examples
// in slot t with coverageCount[i] > 0, for every slot. Called once per
// committed rule (spec.md §4.1).
func (s *Statistics) UpdatePredictions() {
	for t := range s.prediction {
		s.prediction[t] = 0
	}
	for i := 0; i < s.numExamples; i++ {
		if s.coverageCount[i] > 0 {
			s.prediction[s.timeSlotOf[i]]++
		}
	}
}

// CreateSubset returns a Subset scoped to the given label projection
// (spec.md §4.1). The projection is trivial in this single-target
// instantiation but is threaded through for head-refinement polymorphism
// (spec.md §9).
func (s *Statistics) CreateSubset(labelIndices LabelIndices) *Subset {
	return newSubset(s, labelIndices)
}
