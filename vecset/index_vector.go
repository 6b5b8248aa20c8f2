package vecset

import "github.com/mrapp-ke/SyndromeLearner/ports"

// IndexRange returns a fresh []int holding 0..n-1 in ascending order.
// Complexity: O(n) time, O(n) space.
func IndexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// ShuffleInts performs an in-place Fisher-Yates shuffle of a using rng,
// mirroring lvlath/tsp's shuffleIntsInPlace but against the ports.RNG
// interface rather than a concrete *rand.Rand.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleInts(a []int, rng ports.RNG) {
	if len(a) <= 1 {
		return
	}

	rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}

// SampleWithoutReplacement returns k distinct indices drawn from
// [0, n) without replacement, using rng. If k >= n, the result is a
// permutation of [0, n).
//
// Complexity: O(n) time, O(n) space (a full index range is shuffled and
// truncated; acceptable here since n is the feature count, not the
// example count).
func SampleWithoutReplacement(n, k int, rng ports.RNG) []int {
	if k > n {
		k = n
	}

	idx := IndexRange(n)
	ShuffleInts(idx, rng)

	return idx[:k]
}
