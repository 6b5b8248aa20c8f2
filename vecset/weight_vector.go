package vecset

// WeightVector holds one non-negative weight per training example
// (spec.md §3 "Weight vector"). A weight of zero marks an example as
// "not in the current sub-sample": ignored while searching for a
// refinement, but still classified once the rule is committed.
//
// WeightVector is owned by the instance-sub-sampling collaborator for the
// lifetime of growing one rule (spec.md §3 "Lifecycles").
type WeightVector struct {
	weights []float64

	// numNonZero caches the count of strictly-positive weights so
	// NumNonZeroWeights is O(1) after construction.
	numNonZero int
}

// NewWeightVector wraps w as a WeightVector. It validates that every
// entry is non-negative.
func NewWeightVector(w []float64) (*WeightVector, error) {
	var nz int
	for _, x := range w {
		if x < 0 {
			return nil, ErrNegativeWeight
		}
		if x != 0 {
			nz++
		}
	}

	return &WeightVector{weights: w, numNonZero: nz}, nil
}

// NewUnitWeightVector returns a WeightVector of length n with every
// weight set to 1 (the "no sub-sampling" default: every example
// participates in the search).
func NewUnitWeightVector(n int) *WeightVector {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return &WeightVector{weights: w, numNonZero: n}
}

// Len returns the number of examples this vector covers.
func (wv *WeightVector) Len() int {
	return len(wv.weights)
}

// Get returns the weight of example i.
func (wv *WeightVector) Get(i uint32) float64 {
	return wv.weights[i]
}

// HasZeroWeights reports whether any example carries a zero weight
// (spec.md §3, consumed by thresholds.Subsystem's zero-weight split
// adjustment, spec.md §4.5).
func (wv *WeightVector) HasZeroWeights() bool {
	return wv.numNonZero < len(wv.weights)
}

// NumNonZeroWeights returns the count of examples with weight > 0
// (spec.md §3).
func (wv *WeightVector) NumNonZeroWeights() int {
	return wv.numNonZero
}
