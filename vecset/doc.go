// Package vecset provides the dense/sparse storage primitives shared by
// the rule-induction core: the per-example weight vector (spec.md §3
// "Weight vector") and small index-vector helpers used when sampling and
// iterating feature/example indices.
//
// Nothing here is specific to rule induction; like lvlath/core's
// adjacency containers, these are typed, allocation-conscious primitives
// that the higher-level packages (labelstats, thresholds, refinement,
// induction) build on.
package vecset
