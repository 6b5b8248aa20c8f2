// Package quality implements label-wise rule evaluation (spec.md §4.2,
// component C5): the scalar quality of a candidate covered/uncovered
// prediction vector against the per-time-slot ground truth, defined as
// the negated absolute Pearson correlation between the two sequences.
package quality
