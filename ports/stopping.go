package ports

// StopAction is the verdict of one StoppingCriteria.Test call (spec.md §6).
type StopAction int

const (
	// Continue means induction should keep growing rules.
	Continue StopAction = iota

	// StoreStop latches "the first point at which some stopping rule
	// wanted to stop" without halting induction immediately; the driver
	// keeps the first such k = numRules and continues until either a
	// ForceStop or the rule set is exhausted (spec.md §4.7 step 4, §6).
	StoreStop

	// ForceStop halts induction immediately. ForceStop always wins over
	// a previously latched StoreStop (spec.md §6: "FORCE_STOP wins").
	ForceStop
)

// StopDecision is the result of testing one StoppingCriteria.
type StopDecision struct {
	Action StopAction

	// NumRules is the k carried by StoreStop/ForceStop: the rule count
	// at which the criterion first wanted to stop.
	NumRules int
}

// Partition describes which examples belong to the training fold the
// induction loop is allowed to see. SyndromeLearner's core always uses a
// single training-only partition (spec.md §4.7 step 3: "sample the
// partition once (single partition here -> training-only)"); the type
// still carries an explicit index set so a host application's
// StoppingCriteria can validate against held-out data without the core
// needing to know about folds.
type Partition struct {
	TrainingIndices []uint32
}

// StatisticsView is the read-only slice of labelstats.Statistics that a
// StoppingCriteria is allowed to inspect: the committed prediction vector
// and per-example coverage counts, without the ability to mutate them.
// labelstats.Statistics implements this interface structurally.
type StatisticsView interface {
	// Prediction returns the committed per-time-slot prediction vector.
	Prediction() []uint32

	// CoverageCount returns, per example, how many committed rules cover it.
	CoverageCount() []uint32

	// NumTimeSlots returns T.
	NumTimeSlots() int
}

// StoppingCriteria decides, after each committed rule, whether induction
// should continue (spec.md §6, §4.7 step 4).
type StoppingCriteria interface {
	Test(partition Partition, statistics StatisticsView, numRules int) StopDecision
}
