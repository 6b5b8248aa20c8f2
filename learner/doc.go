// Package learner implements the sequential model-induction driver
// (spec.md §4.7, component C10): the top-level Fit loop that builds
// statistics from a label matrix, optionally induces a default rule,
// then repeatedly tests stopping criteria and asks induction.TopDown for
// one more rule until told to stop.
package learner
