package refinement

import "github.com/mrapp-ke/SyndromeLearner/headrefine"

// Refinement is a tentative (condition, head, quality) triple evaluated
// during search (spec.md §3 "Refinement"; GLOSSARY "Refinement").
type Refinement struct {
	Condition Condition
	Head      *headrefine.Head
}

// Score returns the refinement's overall quality score, or +Inf for a
// nil refinement (spec.md §4.6: "an initially empty refinement has +∞
// score").
func (r *Refinement) Score() float64 {
	if r == nil {
		return (*headrefine.Head)(nil).OverallQualityScore()
	}

	return r.Head.OverallQualityScore()
}

// IsBetterThan reports whether r strictly improves on other's score. A
// tying score does not win: ties break in favor of the earlier-evaluated
// candidate (spec.md §4.4 "Tie-breaking", §4.6 "isBetterThan").
func (r *Refinement) IsBetterThan(other *Refinement) bool {
	return r.Score() < other.Score()
}
