package rulemodel

// Condition is the serializable form of a committed condition (spec.md
// §3 "Condition"), copied field-for-field out of a ports.ConditionView
// at commit time so the model no longer depends on the live refinement
// search.
type Condition struct {
	FeatureIndex int     `yaml:"feature_index"`
	Comparator   string  `yaml:"comparator"`
	Threshold    float32 `yaml:"threshold"`
	NumCovered   uint32  `yaml:"num_covered"`
	Covered      bool    `yaml:"covered"`
}

// operatorSymbol renders a comparator for human-readable output.
func (c Condition) operatorSymbol() string {
	switch c.Comparator {
	case "LEQ":
		return "<="
	case "GR":
		return ">"
	case "EQ":
		return "=="
	case "NEQ":
		return "!="
	default:
		return c.Comparator
	}
}
