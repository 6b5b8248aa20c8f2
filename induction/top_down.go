package induction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mrapp-ke/SyndromeLearner/headrefine"
	"github.com/mrapp-ke/SyndromeLearner/ports"
	"github.com/mrapp-ke/SyndromeLearner/refinement"
	"github.com/mrapp-ke/SyndromeLearner/thresholds"
	"github.com/mrapp-ke/SyndromeLearner/vecset"
)

// TopDown grows one rule at a time via greedy top-down refinement
// (spec.md §4.6, component C9).
type TopDown struct {
	subsystem       *thresholds.Subsystem
	featureSampling ports.FeatureSubSampling
	cfg             Config
	refinementCfg   refinement.Config
}

// New returns a TopDown driver, failing fast if cfg violates its §7
// contract (spec.md §7) rather than letting a bad config silently turn
// every InduceRule call into a no-op.
func New(subsystem *thresholds.Subsystem, featureSampling ports.FeatureSubSampling, cfg Config, refinementCfg refinement.Config) (*TopDown, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &TopDown{
		subsystem:       subsystem,
		featureSampling: featureSampling,
		cfg:             cfg,
		refinementCfg:   refinementCfg,
	}, nil
}

// InduceRule grows one rule from weights and commits it to builder if it
// strictly improves on currentQuality, returning the new quality and
// whether a rule was committed (spec.md §4.6 algorithm).
func (td *TopDown) InduceRule(weights *vecset.WeightVector, rng ports.RNG, currentQuality float64, builder ports.ModelBuilder) (bool, float64, error) {
	subset, err := td.subsystem.CreateSubset(weights)
	if err != nil {
		return false, currentQuality, err
	}

	numExamples := weights.Len()
	minCoverage := td.cfg.MinCoverage(numExamples)

	var bestHead *headrefine.Head
	var conditions []refinement.Condition
	numConditions := 0
	foundRefinement := true

	for foundRefinement && (td.cfg.MaxConditions == -1 || numConditions < td.cfg.MaxConditions) {
		foundRefinement = false

		featureIndices := td.featureSampling.SubSample(rng)
		ruleRefinements := make([]*refinement.RuleRefinement, len(featureIndices))
		for i, j := range featureIndices {
			ruleRefinements[i] = refinement.New(j, subset, td.refinementCfg)
		}

		if err := td.searchFeatures(ruleRefinements, bestHead, minCoverage); err != nil {
			return false, currentQuality, err
		}

		var bestRefinement *refinement.Refinement
		for _, rr := range ruleRefinements {
			cand := rr.PollRefinement()
			if cand.IsBetterThan(bestRefinement) {
				bestRefinement = cand
				foundRefinement = true
			}
		}

		if foundRefinement {
			bestHead = bestRefinement.Head
			subset.FilterThresholds(bestRefinement.Condition.ToFilterSpec(), int(bestRefinement.Condition.NumCovered()))
			conditions = append(conditions, bestRefinement.Condition)
			numConditions++
		}
	}

	if bestHead == nil {
		return false, currentQuality, nil
	}
	if bestHead.OverallQualityScore() < currentQuality {
		subset.ApplyPrediction()

		views := make([]ports.ConditionView, len(conditions))
		for i, c := range conditions {
			views[i] = c
		}
		builder.AddRule(views, bestHead)

		return true, bestHead.OverallQualityScore(), nil
	}

	return false, currentQuality, nil
}

// searchFeatures fans out FindRefinement across the candidate features
// with a bounded, join-before-continue parallel-for (spec.md §5
// "Scheduling model"). Each task only writes into its own
// ruleRefinements[i]; the reduction happens sequentially afterward in
// iteration order to keep the result deterministic (spec.md §4.6, §9
// "Parallel section determinism").
func (td *TopDown) searchFeatures(ruleRefinements []*refinement.RuleRefinement, bestHead *headrefine.Head, minCoverage int) error {
	g, _ := errgroup.WithContext(context.Background())
	numThreads := td.cfg.NumThreads
	if numThreads < 1 {
		numThreads = 1
	}
	g.SetLimit(numThreads)

	for _, rr := range ruleRefinements {
		rr := rr
		g.Go(func() error {
			rr.FindRefinement(bestHead, minCoverage)

			return nil
		})
	}

	return g.Wait()
}
