// Package headrefine implements head refinement (spec.md §4.3, component
// C6): given a statistics subset, it produces the best head seen so far
// across the (covered/uncovered) x (raw/accumulated) prediction-vector
// variants, scored by quality.Evaluate.
package headrefine
