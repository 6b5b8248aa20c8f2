package labelstats

import "errors"

// Sentinel errors for the labelstats package.
var (
	// ErrNoTimeSlots indicates a LabelMatrix reporting zero time slots
	// was supplied; T == 0 is a contract violation (spec.md §7).
	ErrNoTimeSlots = errors.New("labelstats: label matrix has zero time slots")

	// ErrNoExamples indicates a LabelMatrix reporting zero rows was
	// supplied; N == 0 is a contract violation (spec.md §7).
	ErrNoExamples = errors.New("labelstats: label matrix has zero rows")

	// ErrBadPartition indicates indicesByTimeSlot does not exactly
	// partition [0, N).
	ErrBadPartition = errors.New("labelstats: time-slot ranges do not partition the example index space")
)
