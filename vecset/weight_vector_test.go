package vecset_test

import (
	"testing"

	"github.com/mrapp-ke/SyndromeLearner/vecset"
	"github.com/stretchr/testify/require"
)

func TestNewWeightVector_RejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := vecset.NewWeightVector([]float64{1, -1, 2})
	require.ErrorIs(t, err, vecset.ErrNegativeWeight)
}

func TestNewWeightVector_CountsNonZero(t *testing.T) {
	t.Parallel()

	wv, err := vecset.NewWeightVector([]float64{0, 1, 0, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 5, wv.Len())
	require.Equal(t, 3, wv.NumNonZeroWeights())
	require.True(t, wv.HasZeroWeights())
	require.Equal(t, float64(2), wv.Get(3))
}

func TestNewUnitWeightVector(t *testing.T) {
	t.Parallel()

	wv := vecset.NewUnitWeightVector(4)
	require.Equal(t, 4, wv.Len())
	require.Equal(t, 4, wv.NumNonZeroWeights())
	require.False(t, wv.HasZeroWeights())
	for i := uint32(0); i < 4; i++ {
		require.Equal(t, float64(1), wv.Get(i))
	}
}

func TestNewWeightVector_EmptyIsValid(t *testing.T) {
	t.Parallel()

	wv, err := vecset.NewWeightVector(nil)
	require.NoError(t, err)
	require.Equal(t, 0, wv.Len())
	require.False(t, wv.HasZeroWeights())
}
