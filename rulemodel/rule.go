package rulemodel

import (
	"fmt"
	"strconv"
	"strings"
)

// Head is the serializable form of a rule's prediction and the quality
// score it was committed at (spec.md §3 "Refinement", §4.2).
type Head struct {
	QualityScore float64 `yaml:"quality_score"`
}

// OverallQualityScore implements ports.HeadView, so a decoded Head can be
// fed back through the same interfaces a live *headrefine.Head uses.
func (h Head) OverallQualityScore() float64 {
	return h.QualityScore
}

// Rule is one committed IF-THEN rule: an ordered conjunction of
// Conditions plus the Head that fires when every condition matches
// (spec.md §3 "Rule").
type Rule struct {
	Conditions []Condition `yaml:"conditions"`
	Head       Head        `yaml:"head"`
}

// String renders the rule as "IF c1 AND c2 THEN +1", in the register of
// the teacher's examples/*.go demonstration output.
func (r Rule) String() string {
	if len(r.Conditions) == 0 {
		return "IF <default> THEN +1"
	}

	parts := make([]string, len(r.Conditions))
	for i, c := range r.Conditions {
		parts[i] = fmt.Sprintf("f%d %s %s", c.FeatureIndex, c.operatorSymbol(), formatThreshold(c.Threshold))
	}

	return "IF " + strings.Join(parts, " AND ") + " THEN +1"
}

func formatThreshold(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
