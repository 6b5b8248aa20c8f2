package induction

import "math"

// Config holds the per-run tuning knobs that govern one rule's growth
// (spec.md §6 configuration table).
type Config struct {
	// MinSupport in [0, 1) yields minCoverage = floor(MinSupport * N):
	// conditions covering fewer examples are rejected.
	MinSupport float64

	// MaxConditions bounds the number of conditions per rule body; -1
	// disables the bound.
	MaxConditions int

	// NumThreads is the number of parallel workers used to search
	// candidate features within one iteration.
	NumThreads int
}

// DefaultConfig returns minSupport=0, no condition limit, and a single
// worker (the safe, fully-sequential default).
func DefaultConfig() Config {
	return Config{MinSupport: 0, MaxConditions: -1, NumThreads: 1}
}

// MinCoverage computes floor(MinSupport * numExamples) (spec.md §6).
func (c Config) MinCoverage(numExamples int) int {
	return int(math.Floor(c.MinSupport * float64(numExamples)))
}
