// Package thresholds implements the thresholds subsystem (spec.md §4.5,
// component C7): a per-feature cache of sorted base vectors shared for
// the lifetime of training, layered with a per-rule cache of
// filtered views restricted to the examples still covered by the
// partially built rule.
//
// FilterSpec is deliberately free of the refinement package's
// Condition/Comparator types: refinement depends on thresholds to fetch
// and filter vectors, so thresholds must not import refinement back
// (spec.md §9 "Cache entries' stale marker").
package thresholds
