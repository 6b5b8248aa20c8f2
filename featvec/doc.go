// Package featvec implements the per-feature sparse vector (spec.md §3
// "Feature vector", component C2): a value-sorted sequence of
// (value, example index) pairs for the examples whose feature is
// present and non-zero, plus the set of examples whose feature is
// missing. Examples in neither set carry an implicit "sparse zero".
//
// A FeatureVector is built once per feature from the unsorted pairs
// ports.FeatureMatrix.FetchFeatureVector hands back, cached by the
// thresholds subsystem, and reused (never mutated) for the lifetime of
// training; per-rule filtered views are separate FeatureVector values
// produced by thresholds.Subset (filterAnyVector / FilterThresholds).
package featvec
