package ports

// ConditionView is the read-only shape of a single committed condition
// (spec.md §3 "Condition"), as the model builder needs to see it.
// refinement.Condition implements this interface structurally.
type ConditionView interface {
	FeatureIndex() int
	Comparator() string // "LEQ", "GR", "EQ", "NEQ"
	Threshold() float32
	NumCovered() uint32
	Covered() bool
}

// HeadView is the read-only shape of a rule's head: here, a single
// scalar "+1 covered" prediction plus the quality score it was evaluated
// at (spec.md §3 "Refinement", §4.2).
type HeadView interface {
	OverallQualityScore() float64
}

// ModelBuilder accumulates committed rules and assembles the final
// RuleList (spec.md §6, §4.7 step 5). numUsedRules == 0 means "emit all
// rules"; rulemodel.Builder is the shipped default implementation.
type ModelBuilder interface {
	// AddRule appends one committed rule (conditions + head) to the
	// in-progress model. Conditions are passed in commit order.
	AddRule(conditions []ConditionView, head HeadView)

	// Build assembles the final rule list. If numUsedRules is 0, every
	// rule added via AddRule is emitted; otherwise only the first
	// numUsedRules rules are kept (spec.md §4.7 step 5, §6, S5).
	Build(numUsedRules int) (ruleList interface{}, err error)
}

// PredictionVisitor is invoked once per committed rule with the current
// committed prediction vector, and once at the end of training with the
// ground-truth vector (spec.md §6).
type PredictionVisitor interface {
	VisitPrediction(prediction []uint32)
	VisitGroundTruth(groundTruth []uint32)
}
