package stopping

import "github.com/mrapp-ke/SyndromeLearner/ports"

// MaxRules force-stops once numRules reaches Limit (spec.md §6
// "maxRules").
type MaxRules struct {
	Limit int
}

// Test implements ports.StoppingCriteria.
func (m MaxRules) Test(_ ports.Partition, _ ports.StatisticsView, numRules int) ports.StopDecision {
	if numRules >= m.Limit {
		return ports.StopDecision{Action: ports.ForceStop, NumRules: numRules}
	}

	return ports.StopDecision{Action: ports.Continue}
}
