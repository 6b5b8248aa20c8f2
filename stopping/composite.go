package stopping

import "github.com/mrapp-ke/SyndromeLearner/ports"

// Any stops as soon as one member criterion wants to stop (spec.md §6
// leaves multi-criterion combination unspecified; see DESIGN.md for the
// chosen semantics). A ForceStop from any member wins outright,
// regardless of other members' verdicts, matching the driver's own
// "FORCE_STOP always wins" rule. Otherwise, the first member reporting
// StoreStop is latched.
type Any struct {
	Criteria []ports.StoppingCriteria
}

// Test implements ports.StoppingCriteria.
func (a Any) Test(p ports.Partition, stats ports.StatisticsView, numRules int) ports.StopDecision {
	var stored *ports.StopDecision
	for _, c := range a.Criteria {
		d := c.Test(p, stats, numRules)
		switch d.Action {
		case ports.ForceStop:
			return d
		case ports.StoreStop:
			if stored == nil {
				stored = &d
			}
		}
	}

	if stored != nil {
		return *stored
	}

	return ports.StopDecision{Action: ports.Continue}
}

// All requires every member criterion to want to stop before it hard
// stops: ForceStop only once every member reports ForceStop; if some but
// not all members want to stop, it degrades to StoreStop so the driver
// latches a candidate numUsedRules without halting induction yet.
type All struct {
	Criteria []ports.StoppingCriteria
}

// Test implements ports.StoppingCriteria.
func (a All) Test(p ports.Partition, stats ports.StatisticsView, numRules int) ports.StopDecision {
	if len(a.Criteria) == 0 {
		return ports.StopDecision{Action: ports.Continue}
	}

	allForce := true
	anyStop := false
	firstSet := false
	first := ports.StopDecision{Action: ports.Continue}

	for _, c := range a.Criteria {
		d := c.Test(p, stats, numRules)
		if d.Action == ports.Continue {
			allForce = false
			continue
		}

		anyStop = true
		if !firstSet {
			first = d
			firstSet = true
		}
		if d.Action != ports.ForceStop {
			allForce = false
		}
	}

	if allForce {
		return ports.StopDecision{Action: ports.ForceStop, NumRules: numRules}
	}
	if anyStop {
		return ports.StopDecision{Action: ports.StoreStop, NumRules: first.NumRules}
	}

	return ports.StopDecision{Action: ports.Continue}
}
