package vecset_test

import (
	"math/rand"
	"testing"

	"github.com/mrapp-ke/SyndromeLearner/vecset"
	"github.com/stretchr/testify/require"
)

// fakeRNG adapts math/rand.Rand to ports.RNG for deterministic tests.
type fakeRNG struct{ r *rand.Rand }

func newFakeRNG(seed int64) fakeRNG { return fakeRNG{r: rand.New(rand.NewSource(seed))} }

func (f fakeRNG) Intn(n int) int                  { return f.r.Intn(n) }
func (f fakeRNG) Shuffle(n int, swap func(i, j int)) { f.r.Shuffle(n, swap) }

func TestIndexRange(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int{0, 1, 2, 3}, vecset.IndexRange(4))
	require.Equal(t, []int{}, vecset.IndexRange(0))
}

func TestShuffleInts_NoOpOnShortSlices(t *testing.T) {
	t.Parallel()

	single := []int{7}
	vecset.ShuffleInts(single, newFakeRNG(1))
	require.Equal(t, []int{7}, single)

	var empty []int
	vecset.ShuffleInts(empty, newFakeRNG(1))
	require.Empty(t, empty)
}

func TestSampleWithoutReplacement_DistinctAndInRange(t *testing.T) {
	t.Parallel()

	got := vecset.SampleWithoutReplacement(10, 4, newFakeRNG(42))
	require.Len(t, got, 4)

	seen := make(map[int]bool, 4)
	for _, v := range got {
		require.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestSampleWithoutReplacement_KGreaterThanN(t *testing.T) {
	t.Parallel()

	got := vecset.SampleWithoutReplacement(3, 10, newFakeRNG(1))
	require.Len(t, got, 3)
}
