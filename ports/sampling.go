package ports

// FeatureSubSampling produces the set of candidate feature indices to
// search in one top-down refinement iteration (spec.md §4.6:
// "featureIndices = featureSubSampling.subSample(rng)"). Implementations
// must be repeatable: the same rng state must yield the same result.
type FeatureSubSampling interface {
	SubSample(rng RNG) []int
}

// InstanceSubSampling produces a weight vector of length N for one rule
// (spec.md §3 "Weight vector", §4.7 step 4 "sample weights"). A weight of
// zero excludes the example from the current search without discarding
// it: it is still classified once the rule is committed.
type InstanceSubSampling interface {
	SubSample(rng RNG, numExamples int) []float64
}
