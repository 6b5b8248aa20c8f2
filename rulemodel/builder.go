package rulemodel

import "github.com/mrapp-ke/SyndromeLearner/ports"

// Builder accumulates committed rules in commit order and assembles the
// final RuleModel (spec.md §4.7 step 5, component C11). It implements
// ports.ModelBuilder.
type Builder struct {
	rules []Rule
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddRule implements ports.ModelBuilder: it copies the given conditions
// and head into the model's serializable form.
func (b *Builder) AddRule(conditions []ports.ConditionView, head ports.HeadView) {
	rule := Rule{
		Conditions: make([]Condition, len(conditions)),
		Head:       Head{QualityScore: head.OverallQualityScore()},
	}
	for i, c := range conditions {
		rule.Conditions[i] = Condition{
			FeatureIndex: c.FeatureIndex(),
			Comparator:   c.Comparator(),
			Threshold:    c.Threshold(),
			NumCovered:   c.NumCovered(),
			Covered:      c.Covered(),
		}
	}

	b.rules = append(b.rules, rule)
}

// Build implements ports.ModelBuilder: numUsedRules == 0 means "emit
// every rule added"; otherwise only the first numUsedRules rules are
// kept (spec.md §4.7 step 5, §6, property S5).
func (b *Builder) Build(numUsedRules int) (interface{}, error) {
	rules := b.rules
	if numUsedRules > 0 && numUsedRules < len(rules) {
		rules = rules[:numUsedRules]
	}

	return RuleModel{Rules: append([]Rule(nil), rules...)}, nil
}
