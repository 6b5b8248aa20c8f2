package thresholds

import "errors"

// ErrWeightLengthMismatch indicates CreateSubset was called with a
// weight vector whose length does not match the statistics' example
// count (spec.md §7, contract violation).
var ErrWeightLengthMismatch = errors.New("thresholds: weight vector length does not match example count")
