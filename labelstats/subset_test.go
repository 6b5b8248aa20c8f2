package labelstats_test

import (
	"testing"

	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/stretchr/testify/require"
)

func newTestStats(t *testing.T) *labelstats.Statistics {
	t.Helper()

	lm := newFakeLabelMatrix(2, []uint32{5, 7})
	stats, err := labelstats.New(lm)
	require.NoError(t, err)

	return stats
}

func TestSubset_AddToSubsetMovesFromUncoveredToCovered(t *testing.T) {
	t.Parallel()

	stats := newTestStats(t)
	subset := stats.CreateSubset(labelstats.NewFullLabelIndices(1))

	subset.AddToSubset(0, 1) // example 0 is in slot 0

	covered := subset.CalculateLabelWisePrediction(false, false)
	uncovered := subset.CalculateLabelWisePrediction(true, false)
	require.Equal(t, uint32(1), covered[0])
	require.Equal(t, stats.TotalPrediction()[0]-1, uncovered[0])
}

func TestSubset_AddToSubsetIgnoresAlreadyCommittedExamples(t *testing.T) {
	t.Parallel()

	stats := newTestStats(t)
	stats.IncreaseCoverageCount(0)

	subset := stats.CreateSubset(labelstats.NewFullLabelIndices(1))
	subset.AddToSubset(0, 1)

	covered := subset.CalculateLabelWisePrediction(false, false)
	require.Equal(t, uint32(0), covered[0])
}

func TestSubset_ResetSubset_SnapshotsThenReloadsBaseline(t *testing.T) {
	t.Parallel()

	stats := newTestStats(t)
	subset := stats.CreateSubset(labelstats.NewFullLabelIndices(1))

	subset.AddToSubset(0, 1)
	subset.ResetSubset()

	covered := subset.CalculateLabelWisePrediction(false, false)
	uncovered := subset.CalculateLabelWisePrediction(true, false)
	require.Equal(t, []uint32{0, 0}, covered)
	require.Equal(t, stats.TotalPrediction(), uncovered)

	accumCovered := subset.CalculateLabelWisePrediction(false, true)
	require.Equal(t, uint32(1), accumCovered[0])
}
