package rulemodel

import "strings"

// RuleModel is the ordered list of committed rules (spec.md §3 "Rule
// model"): the default rule, if present, is always Rules[0].
type RuleModel struct {
	Rules []Rule `yaml:"rules"`
}

// String renders every rule, one per line, in commit order.
func (m RuleModel) String() string {
	lines := make([]string, len(m.Rules))
	for i, r := range m.Rules {
		lines[i] = r.String()
	}

	return strings.Join(lines, "\n")
}

// NumRules returns the number of rules in the model, default rule
// included.
func (m RuleModel) NumRules() int {
	return len(m.Rules)
}
