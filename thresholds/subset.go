package thresholds

import (
	"sync"

	"github.com/mrapp-ke/SyndromeLearner/coverage"
	"github.com/mrapp-ke/SyndromeLearner/featvec"
	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/mrapp-ke/SyndromeLearner/vecset"
)

// filteredEntry is one subset's cached filtered view of a feature,
// tagged with the modification count it was built against (spec.md §9
// "Cache entries' stale marker").
type filteredEntry struct {
	vector                    *featvec.FeatureVector
	numConditionsAtLastFilter int
}

// Subset is a thresholds-subsystem handle scoped to growing one rule
// (spec.md §4.5): a per-feature filtered-vector cache plus a coverage
// mask layered on top of the subsystem's shared base vectors.
type Subset struct {
	sys     *Subsystem
	weights *vecset.WeightVector
	mask    *coverage.Mask

	// numModifications counts committed conditions in the current rule;
	// it doubles as the monotonic value written into the coverage mask
	// (spec.md §4.5 filterCurrentVector: "set coverageMask.target =
	// numConditions").
	numModifications   int
	numCoveredExamples int

	mu            sync.Mutex
	cacheFiltered map[int]*filteredEntry
}

// Weights returns the sampled weight vector this subset was created
// from.
func (su *Subset) Weights() *vecset.WeightVector {
	return su.weights
}

// Statistics returns the parent subsystem's labelstats.Statistics.
func (su *Subset) Statistics() *labelstats.Statistics {
	return su.sys.Statistics()
}

// IsCovered reports whether example i is covered by every condition
// committed into this subset so far (spec.md §8, property 3).
func (su *Subset) IsCovered(i uint32) bool {
	return su.mask.IsCovered(i)
}

// ApplyPrediction bumps coverageCount for every example this subset's
// final rule body covers and recomputes the committed prediction vector
// (spec.md §4.6: "thresholdsSubset.applyPrediction(bestHead) # bumps
// coverageCount and updates predictions"). Called once, after a rule is
// accepted for commit.
func (su *Subset) ApplyPrediction() {
	stats := su.sys.Statistics()
	for i := 0; i < stats.NumExamples(); i++ {
		if su.IsCovered(uint32(i)) {
			stats.IncreaseCoverageCount(uint32(i))
		}
	}
	stats.UpdatePredictions()
}

// IsNominal reports whether feature j must be split with equality
// conditions rather than ≤/>.
func (su *Subset) IsNominal(j int) bool {
	return su.sys.IsNominal(j)
}

// NumModifications returns the number of conditions committed so far in
// the rule this subset is growing.
func (su *Subset) NumModifications() int {
	return su.numModifications
}

// NumCoveredExamples returns the numCovered of the most recently
// committed condition.
func (su *Subset) NumCoveredExamples() int {
	return su.numCoveredExamples
}

// FilteredVector returns feature j's currently-filtered vector,
// rebuilding it from the subsystem's base vector against the coverage
// mask if stale (spec.md §4.5 "Callback for C8"). When no condition has
// been committed yet in this rule, the base vector is returned
// unfiltered: every example is trivially covered by the empty-bodied
// rule (spec.md §3 "Rule").
func (su *Subset) FilteredVector(j int) *featvec.FeatureVector {
	base := su.sys.baseVector(j)
	if su.numModifications == 0 {
		return base
	}

	su.mu.Lock()
	defer su.mu.Unlock()

	if e, ok := su.cacheFiltered[j]; ok && e.numConditionsAtLastFilter == su.numModifications {
		return e.vector
	}

	filtered := su.filterAnyVector(base)
	su.cacheFiltered[j] = &filteredEntry{vector: filtered, numConditionsAtLastFilter: su.numModifications}

	return filtered
}

// filterAnyVector retains only pairs and missing indices the coverage
// mask currently marks as covered (spec.md §4.5 step 2: "apply
// filterAnyVector against the current coverage mask").
func (su *Subset) filterAnyVector(base *featvec.FeatureVector) *featvec.FeatureVector {
	pairs := base.Pairs()
	kept := make([]featvec.Pair, 0, len(pairs))
	for _, p := range pairs {
		if su.mask.IsCovered(p.Example) {
			kept = append(kept, p)
		}
	}

	missing := base.Missing()
	keptMissing := make([]uint32, 0, len(missing))
	for _, i := range missing {
		if su.mask.IsCovered(i) {
			keptMissing = append(keptMissing, i)
		}
	}

	return featvec.FromPairs(kept, keptMissing)
}

// currentFeatureVector returns the filtered vector a just-evaluated
// refinement's start/end positions index into: the one FilterThresholds
// is about to narrow. It is FilteredVector itself, so a stale cache entry
// is rebuilt and stored before FilterThresholds replaces it.
func (su *Subset) currentFeatureVector(j int) *featvec.FeatureVector {
	return su.FilteredVector(j)
}

// FilterThresholds commits a refinement's effect on feature
// spec.FeatureIndex: it narrows the feature's filtered vector to the
// matched examples, updates the coverage mask, and updates the live
// statistics so the next candidate's search sees accurate tentative
// counts (spec.md §4.5 filterThresholds / filterCurrentVector).
func (su *Subset) FilterThresholds(spec FilterSpec, numCovered int) {
	prior := su.currentFeatureVector(spec.FeatureIndex)
	pairs := prior.Pairs()

	if spec.Adjustable && su.weights.HasZeroWeights() {
		spec = adjustFilterSpec(spec, prior)
	}

	su.numModifications++
	su.numCoveredExamples = numCovered
	target := uint64(su.numModifications)

	var newVector *featvec.FeatureVector
	if spec.Covered {
		r := spec.Retained[0]
		span := pairs[r.Start:r.End]

		su.mask.SetTarget(target)
		for _, p := range span {
			su.mask.Mark(p.Example, target)
		}

		su.sys.stats.ResetCoveredStatistics()
		for _, p := range span {
			su.sys.stats.UpdateCoveredStatistic(p.Example, su.weights.Get(p.Example), false)
		}

		newVector = featvec.FromPairs(append([]featvec.Pair(nil), span...), nil)
	} else {
		excluded := pairs[spec.Excluded.Start:spec.Excluded.End]
		for _, p := range excluded {
			su.mask.Mark(p.Example, target)
			su.sys.stats.UpdateCoveredStatistic(p.Example, su.weights.Get(p.Example), true)
		}

		for _, i := range prior.Missing() {
			su.mask.Mark(i, target)
			su.sys.stats.UpdateCoveredStatistic(i, su.weights.Get(i), true)
		}

		var retainedPairs []featvec.Pair
		for _, r := range spec.Retained {
			retainedPairs = append(retainedPairs, pairs[r.Start:r.End]...)
		}
		newVector = featvec.FromPairs(retainedPairs, nil)
	}

	su.mu.Lock()
	su.cacheFiltered[spec.FeatureIndex] = &filteredEntry{vector: newVector, numConditionsAtLastFilter: su.numModifications}
	su.mu.Unlock()
}

// ResetThresholds clears the per-feature filtered-vector cache, zeroes
// the modification counter, and builds a fresh coverage mask, so this
// Subset is ready to grow a new rule (spec.md §4.5 "resetThresholds()").
func (su *Subset) ResetThresholds() {
	su.cacheFiltered = make(map[int]*filteredEntry)
	su.numModifications = 0
	su.numCoveredExamples = 0
	su.mask = coverage.New(su.sys.stats.NumExamples())
}

// AdjustSplit walks from the tentative split position end toward
// previous, while the example at each successive position still falls on
// the side of threshold the split's direction implies, moving zero-weight
// examples whose feature value doesn't actually support the split back
// across it (spec.md §4.5 "Zero-weight split adjustment").
//
// ascending true means the span was built walking forward (the retain
// predicate while advancing from end toward previous is "value <=
// threshold"); false means it was built descending ("value > threshold").
// Idempotent: calling AdjustSplit again with end set to its own prior
// result returns that same position unchanged (spec.md §8, property 7),
// since the walk always stops at the last position still satisfying the
// predicate and a repeat walk from there immediately re-fails the next
// step's predicate.
func AdjustSplit(vector *featvec.FeatureVector, previous, end int, ascending bool, threshold float32) int {
	if abs(previous-end) <= 1 {
		return end
	}

	direction := 1
	if previous < end {
		direction = -1
	}

	for pos := end + direction; pos != previous; pos += direction {
		v := vector.At(pos).Value
		holds := v <= threshold
		if !ascending {
			holds = v > threshold
		}
		if !holds {
			break
		}
		end = pos
	}

	return end
}

// adjustFilterSpec applies AdjustSplit to the boundary a Subset is about to
// commit, re-deriving Retained/Excluded from the corrected end position
// (spec.md §4.5 "Zero-weight split adjustment"). Called only when the
// condition is Adjustable and this subset's weights carry at least one
// zero, so bagging's bootstrap sub-sampling cannot leave a committed span
// wider or narrower than the examples' actual feature values support.
func adjustFilterSpec(spec FilterSpec, vector *featvec.FeatureVector) FilterSpec {
	if spec.Covered {
		r := spec.Retained[0]
		end := AdjustSplit(vector, spec.Previous, r.End, spec.Ascending, spec.Threshold)
		if end == r.End {
			return spec
		}
		spec.Retained = []PositionRange{{Start: r.Start, End: end}}

		return spec
	}

	excl := spec.Excluded
	end := AdjustSplit(vector, spec.Previous, excl.End, spec.Ascending, spec.Threshold)
	if end == excl.End {
		return spec
	}
	excl.End = end

	var retained []PositionRange
	if excl.Start > 0 {
		retained = append(retained, PositionRange{Start: 0, End: excl.Start})
	}
	if excl.End < vector.Len() {
		retained = append(retained, PositionRange{Start: excl.End, End: vector.Len()})
	}
	spec.Excluded = excl
	spec.Retained = retained

	return spec
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
