package sampling

import "github.com/mrapp-ke/SyndromeLearner/ports"

// Bagging implements ports.InstanceSubSampling with bootstrap bagging
// whose weights are draw counts (0, 1, 2, ...): numExamples draws with
// replacement, each draw incrementing
// the weight of the drawn index by 1 (spec.md §3 "Weight vector" — zero
// weight excludes an example from the current search without discarding
// it).
type Bagging struct{}

// SubSample implements ports.InstanceSubSampling.
func (Bagging) SubSample(rng ports.RNG, numExamples int) []float64 {
	weights := make([]float64, numExamples)
	for i := 0; i < numExamples; i++ {
		weights[rng.Intn(numExamples)]++
	}

	return weights
}

// NoSampling implements ports.InstanceSubSampling as the identity: every
// example gets weight 1, i.e. no sub-sampling.
type NoSampling struct{}

// SubSample implements ports.InstanceSubSampling.
func (NoSampling) SubSample(_ ports.RNG, numExamples int) []float64 {
	weights := make([]float64, numExamples)
	for i := range weights {
		weights[i] = 1
	}

	return weights
}
