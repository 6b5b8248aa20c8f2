// Package refinement implements the exact per-feature refinement search
// (spec.md §4.4, component C8): given a feature's currently-filtered
// sorted vector, it sweeps the four phases described there to find the
// best single-feature split, scored via headrefine/quality.
//
// It depends on thresholds (to fetch and later narrow a feature's
// filtered vector) but thresholds never depends back on it: Condition is
// converted to a thresholds.FilterSpec on this side of the boundary
// (spec.md §9), which is what keeps the two packages from forming an
// import cycle.
package refinement
