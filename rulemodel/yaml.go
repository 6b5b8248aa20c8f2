package rulemodel

import "gopkg.in/yaml.v3"

// modelDoc mirrors RuleModel's shape for (de)serialization; aliasing to a
// distinct type avoids MarshalYAML/UnmarshalYAML recursing into
// themselves (spec.md §6 "Serializable model representation").
type modelDoc struct {
	Rules []Rule `yaml:"rules"`
}

// MarshalYAML implements yaml.Marshaler, giving the trained model a
// single entry point for persistence independent of how RuleModel's
// fields evolve.
func (m RuleModel) MarshalYAML() (interface{}, error) {
	return modelDoc{Rules: m.Rules}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *RuleModel) UnmarshalYAML(value *yaml.Node) error {
	var doc modelDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	m.Rules = doc.Rules

	return nil
}

// Marshal serializes the model to YAML.
func Marshal(m RuleModel) ([]byte, error) {
	return yaml.Marshal(m)
}

// Unmarshal parses a YAML-encoded RuleModel.
func Unmarshal(data []byte) (RuleModel, error) {
	var m RuleModel

	err := yaml.Unmarshal(data, &m)

	return m, err
}
