package stopping

import (
	"time"

	"github.com/mrapp-ke/SyndromeLearner/ports"
)

// TimeLimit force-stops once Deadline has passed (SPEC_FULL.md
// "Supplemented features": spec.md §6 names timeLimit as an external
// stopping criterion but leaves its shape unspecified).
type TimeLimit struct {
	Deadline time.Time
}

// NewTimeLimit returns a TimeLimit that force-stops once d has elapsed
// from now.
func NewTimeLimit(d time.Duration) TimeLimit {
	return TimeLimit{Deadline: time.Now().Add(d)}
}

// Test implements ports.StoppingCriteria.
func (t TimeLimit) Test(_ ports.Partition, _ ports.StatisticsView, numRules int) ports.StopDecision {
	if time.Now().After(t.Deadline) {
		return ports.StopDecision{Action: ports.ForceStop, NumRules: numRules}
	}

	return ports.StopDecision{Action: ports.Continue}
}
