// Package sampling provides the default, runnable implementations of the
// ports.RNG, ports.FeatureSubSampling, and ports.InstanceSubSampling
// collaborators (spec.md §6 External Interfaces; SPEC_FULL.md
// "Supplemented features"): a deterministic SplitMix64-seeded RNG in the
// style of the teacher's tsp.deriveRNG, sampling-without-replacement
// feature selection, and bootstrap bagging instance weights (per-example
// draw counts).
package sampling
