// Package stopping provides the default ports.StoppingCriteria
// implementations (spec.md §6, §4.7 step 4): a rule-count ceiling, a
// wall-clock deadline, and the Any/All composites that combine several
// criteria while preserving ForceStop's precedence over StoreStop.
package stopping
