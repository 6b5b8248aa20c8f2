package headrefine

import (
	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/mrapp-ke/SyndromeLearner/quality"
)

// HeadRefinement tracks the best head found so far across repeated
// FindHead calls and hands ownership of it to the caller via PollHead
// (spec.md §4.3, component C6).
type HeadRefinement struct {
	best *Head
}

// New returns an empty HeadRefinement.
func New() *HeadRefinement {
	return &HeadRefinement{}
}

// FindHead asks subset for the (uncovered, accumulated) prediction
// vector, scores it via quality.Evaluate, and returns a new "best head
// so far" iff it is strictly better than currentBest (or currentBest is
// nil). Ties break in favor of the earlier-discovered candidate
// (spec.md §4.3): a tying score does not replace currentBest.
func (hr *HeadRefinement) FindHead(currentBest *Head, subset *labelstats.Subset, uncovered, accumulated bool) *Head {
	prediction := subset.CalculateLabelWisePrediction(uncovered, accumulated)
	score, ok := quality.Evaluate(prediction, subset.GroundTruth())
	if !ok {
		return currentBest
	}

	if currentBest != nil && score >= currentBest.Score {
		return currentBest
	}

	head := &Head{Score: score, Uncovered: uncovered, Accumulated: accumulated}
	hr.best = head

	return head
}

// PollHead yields ownership of the last head FindHead produced, clearing
// it from the refinement object (spec.md §4.3, §9 "Ownership of heads
// and refinements").
func (hr *HeadRefinement) PollHead() *Head {
	h := hr.best
	hr.best = nil

	return h
}
