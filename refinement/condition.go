package refinement

import "github.com/mrapp-ke/SyndromeLearner/thresholds"

// Condition is a single-feature boolean test found by the sweep (spec.md
// §3 "Condition"): covered == false means the condition selects the
// complement of the [start, end) span rather than the span itself.
// start/end/previous are positions into the feature vector the sweep was
// scanning when the condition was evaluated, not example indices.
type Condition struct {
	featureIndex int
	comparator   Comparator
	threshold    float32
	numCovered   uint32
	covered      bool

	start    int
	end      int
	previous int

	// total is the length of the vector this condition was evaluated
	// against; needed to compute the complement span(s) when covered is
	// false (see ToFilterSpec).
	total int

	// adjustable is true for a numerical (LEQ/GR) split built by the
	// ascending/descending scans of phases A, B and D, where previous/end
	// may straddle zero-weight examples the scan skipped over (spec.md
	// §4.5 "Zero-weight split adjustment"). False for nominal EQ/NEQ
	// splits and for phase C's sparse-zero bridge, whose start/end/
	// previous geometry isn't a scanned boundary the adjustment applies to.
	adjustable bool
}

// FeatureIndex implements ports.ConditionView.
func (c Condition) FeatureIndex() int { return c.featureIndex }

// Comparator implements ports.ConditionView.
func (c Condition) Comparator() string { return c.comparator.String() }

// Threshold implements ports.ConditionView.
func (c Condition) Threshold() float32 { return c.threshold }

// NumCovered implements ports.ConditionView.
func (c Condition) NumCovered() uint32 { return c.numCovered }

// Covered implements ports.ConditionView.
func (c Condition) Covered() bool { return c.covered }

// ToFilterSpec converts a committed condition into thresholds'
// dependency-free description of its effect on a feature's filtered
// vector and coverage mask (spec.md §4.5 filterCurrentVector). The
// retained-span geometry is derived purely from (start, end, total,
// covered): when covered is true, the matched [start, end) span is kept
// whole; when false, whatever lies outside [start, end) is kept — one
// span if the excluded range touches either edge of the vector (a
// numerical prefix/suffix complement), two if it is a strict interior
// run (a nominal NEQ excluding one middle value-group).
func (c Condition) ToFilterSpec() thresholds.FilterSpec {
	start, end := c.start, c.end
	if start > end {
		start, end = end, start
	}

	ascending := c.comparator == LEQ

	if c.covered {
		return thresholds.FilterSpec{
			FeatureIndex: c.featureIndex,
			Covered:      true,
			Retained:     []thresholds.PositionRange{{Start: start, End: end}},
			Previous:     c.previous,
			Threshold:    c.threshold,
			Ascending:    ascending,
			Adjustable:   c.adjustable,
		}
	}

	var retained []thresholds.PositionRange
	if start > 0 {
		retained = append(retained, thresholds.PositionRange{Start: 0, End: start})
	}
	if end < c.total {
		retained = append(retained, thresholds.PositionRange{Start: end, End: c.total})
	}

	return thresholds.FilterSpec{
		FeatureIndex: c.featureIndex,
		Covered:      false,
		Excluded:     thresholds.PositionRange{Start: start, End: end},
		Retained:     retained,
		Previous:     c.previous,
		Threshold:    c.threshold,
		Ascending:    ascending,
		Adjustable:   c.adjustable,
	}
}
