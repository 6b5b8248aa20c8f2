// Package induction implements the top-down greedy rule-refinement loop
// (spec.md §4.6, component C9): it grows one rule at a time by
// repeatedly fanning out a bounded parallel-for across sampled candidate
// features, picking the best refinement by a deterministic sequential
// reduction, and committing it into a thresholds.Subset until no
// candidate improves.
package induction
