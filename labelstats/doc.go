// Package labelstats implements the label-wise statistics that drive
// search (spec.md §3 "Label-wise statistics", §4.1, component C4) and
// the per-subset counters consulted while growing one rule (component
// C4a).
//
// Statistics owns the ground truth, the per-example coverage count, and
// the committed/tentative prediction vectors for a fixed T-time-slot
// target. Subset is a short-lived view scoped to one rule's growth: it
// tracks covered/uncovered per-slot counts (and their "accumulated"
// variants for nominal multi-value splits) without mutating Statistics
// until the rule is committed.
//
// The "labelIndices" projection named in spec.md §4.1
// (createSubset(labelIndices)) is preserved as the LabelIndices
// interface even though this single-target instantiation always
// resolves to exactly one label: the syndrome count sequence itself.
// Future multi-label instantiations can project a partial label set
// without changing Subset's internal protocol.
package labelstats
