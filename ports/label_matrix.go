package ports

// IndexRange is a half-open [Start, End) range of example indices sharing
// one time slot.
type IndexRange struct {
	Start uint32
	End   uint32
}

// LabelMatrix is the ground-truth collaborator: it partitions the N
// training examples into T contiguous time slots and carries one
// ground-truth count per slot.
//
// Implementations MUST guarantee that indicesByTimeSlot partitions
// [0, NumRows()) exactly (no gaps, no overlaps) and that TimeSlotOf is
// consistent with that partition.
type LabelMatrix interface {
	// NumRows returns N, the total number of training examples.
	NumRows() int

	// NumTimeSlots returns T, the number of contiguous time slots.
	NumTimeSlots() int

	// ValuesByTimeSlot returns the ground-truth count for every time slot,
	// indexed [0, NumTimeSlots()).
	ValuesByTimeSlot() []uint32

	// TimeSlotOf returns the zero-based time-slot index that example i
	// belongs to.
	TimeSlotOf(i uint32) uint32

	// IndicesByTimeSlot returns the [start, end) example-index range for
	// every time slot, indexed [0, NumTimeSlots()).
	IndicesByTimeSlot() []IndexRange
}
