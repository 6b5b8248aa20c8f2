// Package rulemodel holds the serializable model representation (spec.md
// §3 "Rule", "Rule list"; component C11): committed conditions and rule
// heads, an ordered RuleModel, a Builder that implements
// ports.ModelBuilder, and YAML marshaling for persisting a trained
// model.
package rulemodel
