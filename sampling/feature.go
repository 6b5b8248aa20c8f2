package sampling

import (
	"github.com/mrapp-ke/SyndromeLearner/ports"
	"github.com/mrapp-ke/SyndromeLearner/vecset"
)

// WithoutReplacement implements ports.FeatureSubSampling by drawing
// SampleSize distinct indices out of [0, NumFeatures) per call via
// vecset.SampleWithoutReplacement. SampleSize <= 0 or >= NumFeatures
// samples every feature (no sub-sampling).
type WithoutReplacement struct {
	NumFeatures int
	SampleSize  int
}

// SubSample implements ports.FeatureSubSampling.
func (s WithoutReplacement) SubSample(rng ports.RNG) []int {
	size := s.SampleSize
	if size <= 0 || size >= s.NumFeatures {
		size = s.NumFeatures
	}

	return vecset.SampleWithoutReplacement(s.NumFeatures, size, rng)
}
