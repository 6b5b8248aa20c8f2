package thresholds

import (
	"sync"

	"github.com/mrapp-ke/SyndromeLearner/coverage"
	"github.com/mrapp-ke/SyndromeLearner/featvec"
	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/mrapp-ke/SyndromeLearner/ports"
	"github.com/mrapp-ke/SyndromeLearner/vecset"
)

// Subsystem owns the base, unfiltered feature-vector cache shared across
// every rule grown during one training run (spec.md §4.5, component C7):
// each feature's vector is fetched, sorted, and cached the first time any
// rule asks for it, then kept for the lifetime of training (spec.md §3
// "Lifecycles").
type Subsystem struct {
	features ports.FeatureMatrix
	nominal  ports.NominalMask
	stats    *labelstats.Statistics

	mu    sync.Mutex
	cache map[int]*featvec.FeatureVector
}

// New returns a Subsystem backed by features/nominal and driving stats.
func New(features ports.FeatureMatrix, nominal ports.NominalMask, stats *labelstats.Statistics) *Subsystem {
	return &Subsystem{
		features: features,
		nominal:  nominal,
		stats:    stats,
		cache:    make(map[int]*featvec.FeatureVector, features.NumCols()),
	}
}

// NumCols returns the number of features.
func (s *Subsystem) NumCols() int {
	return s.features.NumCols()
}

// Statistics returns the labelstats.Statistics this subsystem drives,
// giving the refinement package a way to create the per-feature
// statistics subsets C8's sweep needs without thresholds importing
// refinement (spec.md §4.4 Setup: "Create an empty statistics subset").
func (s *Subsystem) Statistics() *labelstats.Statistics {
	return s.stats
}

// IsNominal reports whether feature j must be split with equality
// conditions rather than ≤/>.
func (s *Subsystem) IsNominal(j int) bool {
	return s.nominal.IsNominal(j)
}

// baseVector returns feature j's cached, sorted vector, fetching and
// sorting it on first request (spec.md §4.5: "cache: feature_index ->
// owning pointer to the unfiltered sorted feature vector (lazily
// fetched)"). Safe for concurrent use: distinct features may be
// first-touched from different induction workers within the same
// parallel-for (spec.md §5 notes the cache is otherwise mutated only
// outside the parallel region; guarding the first touch costs nothing
// once the vector is installed).
func (s *Subsystem) baseVector(j int) *featvec.FeatureVector {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fv, ok := s.cache[j]; ok {
		return fv
	}
	pairs, missing := s.features.FetchFeatureVector(j)
	fv := featvec.New(pairs, missing)
	s.cache[j] = fv

	return fv
}

// CreateSubset resets the live statistics' tentative prediction to the
// committed prediction, installs the sampled weights into them
// (addSampledStatistic for every example with a non-zero weight), builds
// a fresh coverage mask of length N, and returns a subset handle scoped
// to growing one rule (spec.md §4.5 "createSubset(weights)").
func (s *Subsystem) CreateSubset(weights *vecset.WeightVector) (*Subset, error) {
	if weights.Len() != s.stats.NumExamples() {
		return nil, ErrWeightLengthMismatch
	}

	s.stats.ResetSampledStatistics()
	for i := 0; i < weights.Len(); i++ {
		if w := weights.Get(uint32(i)); w != 0 {
			s.stats.AddSampledStatistic(uint32(i), w)
		}
	}

	return &Subset{
		sys:           s,
		weights:       weights,
		mask:          coverage.New(s.stats.NumExamples()),
		cacheFiltered: make(map[int]*filteredEntry),
	}, nil
}
