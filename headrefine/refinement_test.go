package headrefine_test

import (
	"testing"

	"github.com/mrapp-ke/SyndromeLearner/headrefine"
	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/mrapp-ke/SyndromeLearner/ports"
	"github.com/stretchr/testify/require"
)

type fakeLabelMatrix struct {
	groundTruth []uint32
	ranges      []ports.IndexRange
	timeSlotOf  []uint32
}

func newFakeLabelMatrix(perSlot int, groundTruth []uint32) *fakeLabelMatrix {
	n := perSlot * len(groundTruth)
	ranges := make([]ports.IndexRange, len(groundTruth))
	timeSlotOf := make([]uint32, n)
	for slot := range groundTruth {
		start := uint32(slot * perSlot)
		end := start + uint32(perSlot)
		ranges[slot] = ports.IndexRange{Start: start, End: end}
		for i := start; i < end; i++ {
			timeSlotOf[i] = uint32(slot)
		}
	}

	return &fakeLabelMatrix{groundTruth: groundTruth, ranges: ranges, timeSlotOf: timeSlotOf}
}

func (f *fakeLabelMatrix) NumRows() int                         { return len(f.timeSlotOf) }
func (f *fakeLabelMatrix) NumTimeSlots() int                     { return len(f.groundTruth) }
func (f *fakeLabelMatrix) ValuesByTimeSlot() []uint32            { return f.groundTruth }
func (f *fakeLabelMatrix) TimeSlotOf(i uint32) uint32            { return f.timeSlotOf[i] }
func (f *fakeLabelMatrix) IndicesByTimeSlot() []ports.IndexRange { return f.ranges }

func TestHeadRefinement_FindHead_ReplacesOnStrictImprovement(t *testing.T) {
	t.Parallel()

	// Two slots with distinct ground truth (1, 4); covering one example
	// from slot 0 and two from slot 1 yields prediction (1, 2), which
	// correlates perfectly with the ground truth.
	lm := newFakeLabelMatrix(2, []uint32{1, 4})
	stats, err := labelstats.New(lm)
	require.NoError(t, err)

	subset := stats.CreateSubset(labelstats.NewFullLabelIndices(1))
	subset.AddToSubset(0, 1)
	subset.AddToSubset(2, 1)
	subset.AddToSubset(3, 1)

	hr := headrefine.New()
	best := hr.FindHead(nil, subset, false, false)
	require.NotNil(t, best)
	require.False(t, best.Uncovered)

	// An uncovered candidate with a worse (all-zero, undefined) score must
	// not replace the incumbent.
	worseSubset := stats.CreateSubset(labelstats.NewFullLabelIndices(1))
	still := hr.FindHead(best, worseSubset, true, false)
	require.Same(t, best, still)
}

func TestHeadRefinement_PollHead(t *testing.T) {
	t.Parallel()

	hr := headrefine.New()
	require.Nil(t, hr.PollHead())

	lm := newFakeLabelMatrix(1, []uint32{1, 4})
	stats, err := labelstats.New(lm)
	require.NoError(t, err)
	subset := stats.CreateSubset(labelstats.NewFullLabelIndices(1))
	subset.AddToSubset(0, 1)

	head := hr.FindHead(nil, subset, false, false)
	if head != nil {
		require.Same(t, head, hr.PollHead())
		require.Nil(t, hr.PollHead())
	}
}
