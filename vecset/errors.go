package vecset

import "errors"

// Sentinel errors for the vecset package.
var (
	// ErrNegativeWeight indicates a weight below zero was supplied to a
	// WeightVector; weights must be non-negative (spec.md §3).
	ErrNegativeWeight = errors.New("vecset: weight must be non-negative")

	// ErrLengthMismatch indicates two vectors expected to share a length
	// (e.g. a WeightVector against N examples) do not.
	ErrLengthMismatch = errors.New("vecset: length mismatch")
)
