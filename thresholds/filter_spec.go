package thresholds

// PositionRange is a [Start, End) span of positions into a feature's
// currently-filtered (value-sorted) vector. End is exclusive; Start <=
// End. Positions, not example indices: they index the pairs slice a
// refinement search scanned to find this split (spec.md §3 "Condition":
// "span bookkeeping: start, end, previous positions into the feature
// vector").
type PositionRange struct {
	Start int
	End   int
}

// FilterSpec describes how one freshly committed condition narrows
// feature FeatureIndex's filtered vector (spec.md §4.5
// filterCurrentVector). It carries no reference to the refinement
// package's Condition/Comparator types: refinement converts its own
// Condition into a FilterSpec when committing, never the reverse, which
// is what keeps thresholds free of an import cycle back to its own
// caller.
type FilterSpec struct {
	FeatureIndex int

	// Covered is true when the condition's matched side is the narrow
	// span named by Retained[0]; false when the matched side is the wide
	// complement of Excluded.
	Covered bool

	// Retained is, for Covered == true, exactly one span: the matched
	// side that becomes the new filtered vector. For Covered == false,
	// it is the surviving span(s) outside Excluded — one span for a
	// plain prefix/suffix complement, two for a NEQ bridge that excludes
	// a middle nominal value-group and must keep both sides of it
	// (spec.md §4.5: "For NEQ, retain both the pre-range and the
	// post-range bypassing the deleted span").
	Retained []PositionRange

	// Excluded is the span dropped by a Covered == false condition. The
	// zero value when Covered is true.
	Excluded PositionRange

	// Previous is the last scanned position the sweep folded into the
	// matched side before crossing this split's boundary (refinement's
	// Condition.previous). Together with the boundary end recorded in
	// Retained[0].End (Covered == true) or Excluded.End (Covered ==
	// false), it locates the zero-weight examples, if any, the scan
	// skipped between them (spec.md §4.5 "Zero-weight split adjustment").
	Previous int

	// Threshold is the split value the boundary was evaluated against.
	Threshold float32

	// Ascending is true when the matched side was built advancing toward
	// larger positions with retain predicate "value <= Threshold" (LEQ),
	// false when it was built descending with predicate "value >
	// Threshold" (GR). Meaningless when Adjustable is false.
	Ascending bool

	// Adjustable is true for a numerical LEQ/GR split whose boundary may
	// need correcting for skipped zero-weight examples before it is
	// committed. False for nominal EQ/NEQ splits and for the sparse-zero
	// bridge, neither of which has a scanned-boundary geometry the
	// adjustment applies to.
	Adjustable bool
}
