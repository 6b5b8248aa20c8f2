package thresholds_test

import (
	"testing"

	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/mrapp-ke/SyndromeLearner/ports"
	"github.com/mrapp-ke/SyndromeLearner/thresholds"
	"github.com/mrapp-ke/SyndromeLearner/vecset"
	"github.com/stretchr/testify/require"
)

// fakeLabelMatrix is a minimal ports.LabelMatrix fixture: one example per
// time slot.
type fakeLabelMatrix struct {
	groundTruth []uint32
}

func (f *fakeLabelMatrix) NumRows() int              { return len(f.groundTruth) }
func (f *fakeLabelMatrix) NumTimeSlots() int          { return len(f.groundTruth) }
func (f *fakeLabelMatrix) ValuesByTimeSlot() []uint32 { return f.groundTruth }
func (f *fakeLabelMatrix) TimeSlotOf(i uint32) uint32 { return i }
func (f *fakeLabelMatrix) IndicesByTimeSlot() []ports.IndexRange {
	out := make([]ports.IndexRange, len(f.groundTruth))
	for i := range out {
		out[i] = ports.IndexRange{Start: uint32(i), End: uint32(i + 1)}
	}

	return out
}

// fakeFeatureMatrix serves a fixed set of columns out of an in-memory
// table; column j's values are [][j] below, with 0 treated as sparse-zero
// (absent) per ports.FeatureMatrix's contract.
type fakeFeatureMatrix struct {
	cols [][]float32
}

func (f *fakeFeatureMatrix) NumCols() int { return len(f.cols) }

func (f *fakeFeatureMatrix) FetchFeatureVector(j int) (pairs []ports.RawPair, missing []uint32) {
	for i, v := range f.cols[j] {
		if v != 0 {
			pairs = append(pairs, ports.RawPair{Value: v, Example: uint32(i)})
		}
	}

	return pairs, nil
}

type fakeNominalMask struct{ nominal map[int]bool }

func (f fakeNominalMask) IsNominal(j int) bool { return f.nominal[j] }

func newTestSubsystem(t *testing.T) (*thresholds.Subsystem, *labelstats.Statistics) {
	t.Helper()

	stats, err := labelstats.New(&fakeLabelMatrix{groundTruth: []uint32{1, 2, 3, 4}})
	require.NoError(t, err)

	features := &fakeFeatureMatrix{cols: [][]float32{{1, 2, 3, 4}}}
	nominal := fakeNominalMask{}

	return thresholds.New(features, nominal, stats), stats
}

func TestSubsystem_NumColsAndIsNominal(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	require.Equal(t, 1, sys.NumCols())
	require.False(t, sys.IsNominal(0))
}

// IsNominal is per-feature: a subsystem over several columns must not
// collapse to a single nominal/numerical verdict for all of them.
func TestSubsystem_IsNominal_ReflectsPerFeatureMask(t *testing.T) {
	t.Parallel()

	stats, err := labelstats.New(&fakeLabelMatrix{groundTruth: []uint32{1, 2, 3, 4}})
	require.NoError(t, err)

	features := &fakeFeatureMatrix{cols: [][]float32{{1, 1, 2, 2}, {-2, -1, 1, 2}}}
	nominal := fakeNominalMask{nominal: map[int]bool{0: true}}
	sys := thresholds.New(features, nominal, stats)

	require.True(t, sys.IsNominal(0))
	require.False(t, sys.IsNominal(1))
}

func TestCreateSubset_RejectsLengthMismatch(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	bad, err := vecset.NewWeightVector([]float64{1, 1})
	require.NoError(t, err)

	_, err = sys.CreateSubset(bad)
	require.ErrorIs(t, err, thresholds.ErrWeightLengthMismatch)
}

func TestCreateSubset_InstallsSampledWeightsAndFreshMask(t *testing.T) {
	t.Parallel()

	sys, stats := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)

	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)
	require.Equal(t, 0, subset.NumModifications())
	require.Equal(t, []uint32{1, 1, 1, 1}, stats.TotalPrediction())

	for i := uint32(0); i < 4; i++ {
		require.True(t, subset.IsCovered(i))
	}
}

func TestFilteredVector_UnfilteredBeforeAnyCondition(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	fv := subset.FilteredVector(0)
	require.Equal(t, 4, fv.Len())
}

func TestFilterThresholds_CoveredBranchNarrowsToRetainedSpan(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	// Feature 0's sorted vector is [1@0, 2@1, 3@2, 4@3]; keep the first
	// two positions (value <= 2).
	spec := thresholds.FilterSpec{
		FeatureIndex: 0,
		Covered:      true,
		Retained:     []thresholds.PositionRange{{Start: 0, End: 2}},
	}
	subset.FilterThresholds(spec, 2)

	require.Equal(t, 1, subset.NumModifications())
	require.Equal(t, 2, subset.NumCoveredExamples())
	require.True(t, subset.IsCovered(0))
	require.True(t, subset.IsCovered(1))
	require.False(t, subset.IsCovered(2))
	require.False(t, subset.IsCovered(3))

	fv := subset.FilteredVector(0)
	require.Equal(t, 2, fv.Len())
}

func TestFilterThresholds_UncoveredBranchExcludesSpan(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	// Exclude position 1 (value 2, example 1); retain everything else.
	spec := thresholds.FilterSpec{
		FeatureIndex: 0,
		Covered:      false,
		Excluded:     thresholds.PositionRange{Start: 1, End: 2},
		Retained: []thresholds.PositionRange{
			{Start: 0, End: 1},
			{Start: 2, End: 4},
		},
	}
	subset.FilterThresholds(spec, 3)

	require.True(t, subset.IsCovered(0))
	require.False(t, subset.IsCovered(1))
	require.True(t, subset.IsCovered(2))
	require.True(t, subset.IsCovered(3))

	fv := subset.FilteredVector(0)
	require.Equal(t, 3, fv.Len())
}

func TestResetThresholds_RestartsFromEmptyRule(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	subset.FilterThresholds(thresholds.FilterSpec{
		FeatureIndex: 0,
		Covered:      true,
		Retained:     []thresholds.PositionRange{{Start: 0, End: 2}},
	}, 2)

	subset.ResetThresholds()

	require.Equal(t, 0, subset.NumModifications())
	for i := uint32(0); i < 4; i++ {
		require.True(t, subset.IsCovered(i))
	}
}

func TestAdjustSplit_WalksBackwardWhileValueSatisfiesThreshold(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	fv := subset.FilteredVector(0) // [1@0, 2@1, 3@2, 4@3]

	// previous=-1, end=2: positions 1 (value 2) and 0 (value 1) both
	// satisfy <= 2.5, so the walk reaches all the way back to previous.
	end := thresholds.AdjustSplit(fv, -1, 2, true, 2.5)
	require.Equal(t, 0, end)
}

func TestAdjustSplit_StopsAtFirstFailingPosition(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	fv := subset.FilteredVector(0)

	// previous=-1, end=2: position 1 (value 2) already fails <= 1.5, so
	// the walk breaks immediately and end is returned unchanged.
	end := thresholds.AdjustSplit(fv, -1, 2, true, 1.5)
	require.Equal(t, 2, end)
}

// A bagging-sampled weight vector with a zero-weight example in the
// middle of a committed covered span must have that span corrected by
// AdjustSplit before it narrows the filtered vector (spec.md §4.5
// "Zero-weight split adjustment"): example 1's zero weight left a gap
// between previous (0) and the naive end (3) that the scan never
// resolved, and the adjustable, ascending split here pulls end back to
// exclude positions whose value fails the threshold.
func TestFilterThresholds_AdjustsCoveredSpanWhenWeightsHaveZeros(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights, err := vecset.NewWeightVector([]float64{1, 0, 1, 1})
	require.NoError(t, err)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	// Feature 0's sorted vector is [1@0, 2@1, 3@2, 4@3].
	spec := thresholds.FilterSpec{
		FeatureIndex: 0,
		Covered:      true,
		Retained:     []thresholds.PositionRange{{Start: 0, End: 3}},
		Previous:     0,
		Threshold:    3.5,
		Ascending:    true,
		Adjustable:   true,
	}
	subset.FilterThresholds(spec, 3)

	require.True(t, subset.IsCovered(0))
	require.False(t, subset.IsCovered(1))
	require.False(t, subset.IsCovered(2))
	require.False(t, subset.IsCovered(3))

	fv := subset.FilteredVector(0)
	require.Equal(t, 1, fv.Len())
}

// The same adjustable spec with no zero weights in the sample must leave
// the committed span untouched: AdjustSplit is only a correction for
// bagging's zero-weight gaps, not a general-purpose re-scan.
func TestFilterThresholds_SkipsAdjustmentWhenNoZeroWeights(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	spec := thresholds.FilterSpec{
		FeatureIndex: 0,
		Covered:      true,
		Retained:     []thresholds.PositionRange{{Start: 0, End: 3}},
		Previous:     0,
		Threshold:    3.5,
		Ascending:    true,
		Adjustable:   true,
	}
	subset.FilterThresholds(spec, 3)

	require.True(t, subset.IsCovered(0))
	require.True(t, subset.IsCovered(1))
	require.True(t, subset.IsCovered(2))
	require.False(t, subset.IsCovered(3))
}

// The uncovered (complement) branch re-derives both Retained spans
// around the adjusted Excluded.End, rather than only touching the
// covered branch's single span.
func TestFilterThresholds_AdjustsUncoveredSpanWhenWeightsHaveZeros(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights, err := vecset.NewWeightVector([]float64{1, 0, 1, 1})
	require.NoError(t, err)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	spec := thresholds.FilterSpec{
		FeatureIndex: 0,
		Covered:      false,
		Excluded:     thresholds.PositionRange{Start: 1, End: 4},
		Retained:     []thresholds.PositionRange{{Start: 0, End: 1}},
		Previous:     1,
		Threshold:    1.5,
		Ascending:    false,
		Adjustable:   true,
	}
	subset.FilterThresholds(spec, 1)

	require.True(t, subset.IsCovered(0))
	require.False(t, subset.IsCovered(1))
	require.True(t, subset.IsCovered(2))
	require.True(t, subset.IsCovered(3))

	fv := subset.FilteredVector(0)
	require.Equal(t, 3, fv.Len())
}

func TestAdjustSplit_IdempotentOnRepeatCall(t *testing.T) {
	t.Parallel()

	sys, _ := newTestSubsystem(t)
	weights := vecset.NewUnitWeightVector(4)
	subset, err := sys.CreateSubset(weights)
	require.NoError(t, err)

	fv := subset.FilteredVector(0)

	first := thresholds.AdjustSplit(fv, -1, 2, true, 2.5)
	second := thresholds.AdjustSplit(fv, -1, first, true, 2.5)
	require.Equal(t, first, second)
}
