package refinement

import (
	"testing"

	"github.com/mrapp-ke/SyndromeLearner/thresholds"
	"github.com/stretchr/testify/require"
)

func TestCondition_Accessors(t *testing.T) {
	t.Parallel()

	cond := Condition{featureIndex: 3, comparator: GR, threshold: 1.5, numCovered: 7, covered: true}
	require.Equal(t, 3, cond.FeatureIndex())
	require.Equal(t, "GR", cond.Comparator())
	require.Equal(t, float32(1.5), cond.Threshold())
	require.Equal(t, uint32(7), cond.NumCovered())
	require.True(t, cond.Covered())
}

func TestToFilterSpec_CoveredKeepsMatchedSpan(t *testing.T) {
	t.Parallel()

	cond := Condition{featureIndex: 0, comparator: LEQ, covered: true, start: 0, end: 2, previous: -1, total: 4}
	spec := cond.ToFilterSpec()

	require.Equal(t, 0, spec.FeatureIndex)
	require.True(t, spec.Covered)
	require.Equal(t, []thresholds.PositionRange{{Start: 0, End: 2}}, spec.Retained)
}

func TestToFilterSpec_UncoveredPrefixComplement(t *testing.T) {
	t.Parallel()

	// Excluded touches the left edge (start == 0): only a suffix remains.
	cond := Condition{featureIndex: 0, comparator: GR, covered: false, start: 0, end: 2, previous: -1, total: 4}
	spec := cond.ToFilterSpec()

	require.False(t, spec.Covered)
	require.Equal(t, thresholds.PositionRange{Start: 0, End: 2}, spec.Excluded)
	require.Equal(t, []thresholds.PositionRange{{Start: 2, End: 4}}, spec.Retained)
}

func TestToFilterSpec_UncoveredInteriorBridgeKeepsBothSides(t *testing.T) {
	t.Parallel()

	// Excluded is a strict interior run: both the prefix and suffix survive.
	cond := Condition{featureIndex: 0, comparator: NEQ, covered: false, start: 1, end: 3, previous: 0, total: 5}
	spec := cond.ToFilterSpec()

	require.False(t, spec.Covered)
	require.Equal(t, thresholds.PositionRange{Start: 1, End: 3}, spec.Excluded)
	require.Equal(t, []thresholds.PositionRange{{Start: 0, End: 1}, {Start: 3, End: 5}}, spec.Retained)
}

func TestToFilterSpec_StartGreaterThanEndIsNormalized(t *testing.T) {
	t.Parallel()

	// A condition whose start is greater than its end is normalized by
	// ToFilterSpec before the spans are derived.
	cond := Condition{featureIndex: 0, comparator: GR, covered: true, start: 3, end: 1, previous: 4, total: 5}
	spec := cond.ToFilterSpec()

	require.True(t, spec.Covered)
	require.Equal(t, []thresholds.PositionRange{{Start: 1, End: 3}}, spec.Retained)
}

// A numerical LEQ split carries its previous/threshold pair forward so
// FilterThresholds can correct the boundary for skipped zero-weight
// examples (spec.md §4.5 "Zero-weight split adjustment").
func TestToFilterSpec_PropagatesAdjustmentFieldsForNumericalSplit(t *testing.T) {
	t.Parallel()

	cond := Condition{featureIndex: 0, comparator: LEQ, covered: true, start: 0, end: 5, previous: 2, total: 8, threshold: 1.5, adjustable: true}
	spec := cond.ToFilterSpec()

	require.Equal(t, 2, spec.Previous)
	require.Equal(t, float32(1.5), spec.Threshold)
	require.True(t, spec.Ascending)
	require.True(t, spec.Adjustable)
}

// A GR split is descending: Ascending must be false even though the
// split is still adjustable.
func TestToFilterSpec_GRSplitIsDescending(t *testing.T) {
	t.Parallel()

	cond := Condition{featureIndex: 0, comparator: GR, covered: false, start: 2, end: 5, previous: 6, total: 8, adjustable: true}
	spec := cond.ToFilterSpec()

	require.False(t, spec.Ascending)
	require.True(t, spec.Adjustable)
}

// Nominal EQ/NEQ splits never carry the adjustable flag: the sweep never
// sets it for them, so FilterThresholds leaves their boundary untouched
// regardless of zero weights.
func TestToFilterSpec_NominalSplitIsNotAdjustable(t *testing.T) {
	t.Parallel()

	cond := Condition{featureIndex: 0, comparator: EQ, covered: true, start: 0, end: 2, previous: 1, total: 4}
	spec := cond.ToFilterSpec()

	require.False(t, spec.Adjustable)
}
