package featvec

import (
	"sort"

	"github.com/mrapp-ke/SyndromeLearner/ports"
)

// FeatureVector is a value-sorted sequence of (value, example index)
// pairs for a single feature, plus the set of examples whose value for
// that feature is missing (spec.md §3). Equal values form maximal runs
// that callers MUST treat as one splitting point (invariant, spec.md §3).
//
// A zero-value FeatureVector (e.g. from New with empty input) is a valid,
// empty vector.
type FeatureVector struct {
	pairs   []Pair
	missing []uint32
}

// New builds a sorted FeatureVector from the unsorted pairs and missing
// indices a ports.FeatureMatrix hands back. Examples absent from both
// pairs and missing are implicitly "sparse zero" and contribute nothing
// to the vector (spec.md §3).
//
// Complexity: O(k log k) where k = len(pairs).
func New(pairs []ports.RawPair, missing []uint32) *FeatureVector {
	fv := &FeatureVector{
		pairs:   make([]Pair, len(pairs)),
		missing: append([]uint32(nil), missing...),
	}
	for i, p := range pairs {
		fv.pairs[i] = Pair{Value: p.Value, Example: p.Example}
	}
	sort.Slice(fv.pairs, func(i, j int) bool { return fv.pairs[i].Value < fv.pairs[j].Value })

	return fv
}

// FromPairs builds a FeatureVector from already-sorted pairs and a
// missing set, without re-sorting. Used by thresholds when constructing
// filtered sub-views where sort order is preserved by construction.
func FromPairs(pairs []Pair, missing []uint32) *FeatureVector {
	return &FeatureVector{pairs: pairs, missing: missing}
}

// Len returns the number of non-missing, non-zero observations.
func (fv *FeatureVector) Len() int {
	return len(fv.pairs)
}

// At returns the i-th (value, example) pair in ascending value order.
func (fv *FeatureVector) At(i int) Pair {
	return fv.pairs[i]
}

// Pairs returns the underlying sorted pair slice. Callers must not
// mutate it.
func (fv *FeatureVector) Pairs() []Pair {
	return fv.pairs
}

// Missing returns the example indices whose feature value is missing.
// Callers must not mutate it.
func (fv *FeatureVector) Missing() []uint32 {
	return fv.missing
}

// IsSorted reports whether the pair slice is ascending by Value; used by
// tests to assert the invariant in spec.md §8, property 8.
func (fv *FeatureVector) IsSorted() bool {
	return sort.SliceIsSorted(fv.pairs, func(i, j int) bool { return fv.pairs[i].Value < fv.pairs[j].Value })
}
