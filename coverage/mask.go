package coverage

// Mask is an array M of length N paired with a scalar target (spec.md
// §3, §9): M[i] == target iff example i is currently covered by the
// partial rule being grown.
//
// A freshly constructed Mask starts with every mark at the Go zero value
// and target == 0, so IsCovered trivially reports true for every example
// before any condition narrows it — the "covered by the empty-bodied
// rule" baseline falls out of the zero value rather than needing an
// explicit initialization pass. One Mask belongs to exactly one
// in-progress rule (spec.md §4.5 createSubset allocates a fresh one per
// rule); the monotonic value written into target and individual marks is
// owned by the caller (thresholds.Subset's condition count), not by this
// type.
type Mask struct {
	mark   []uint64
	target uint64
}

// New allocates a coverage mask of length n.
func New(n int) *Mask {
	return &Mask{mark: make([]uint64, n)}
}

// Len returns N.
func (m *Mask) Len() int {
	return len(m.mark)
}

// Target returns the ordinal examples must match to be considered
// covered.
func (m *Mask) Target() uint64 {
	return m.target
}

// IsCovered reports whether example i is currently covered.
func (m *Mask) IsCovered(i uint32) bool {
	return m.mark[i] == m.target
}

// SetTarget advances the mask's target without touching any mark. Used
// by filterCurrentVector's "covered" branch, which then marks the narrow
// retained span under the new target via Mark (spec.md §4.5: "set
// coverageMask.target = numConditions"). Every example not subsequently
// marked under newTarget reads as uncovered, in O(1) regardless of N
// (spec.md §9 "Coverage mask as O(1)-reset set").
func (m *Mask) SetTarget(newTarget uint64) {
	m.target = newTarget
}

// Mark sets M[i] = value directly. Used for both the "covered" branch
// (value == the new target, applied to the retained span) and the
// "!covered" branch (value == the current condition count, applied to
// the excluded span, with target left unchanged so the untouched
// retained complement stays covered) of filterCurrentVector (spec.md
// §4.5).
func (m *Mask) Mark(i uint32, value uint64) {
	m.mark[i] = value
}

// Reinitialize zeroes every mark and the target, restoring the initial
// "covered by the empty-bodied rule" baseline. Exposed for the
// practically unreachable counter-overflow case (spec.md §9: "Overflow
// is practically unreachable... but implementations should detect it and
// re-initialize M on rollover"); the counter itself is owned by the
// caller, which must also restart its own count from zero after calling
// this.
func (m *Mask) Reinitialize() {
	for i := range m.mark {
		m.mark[i] = 0
	}
	m.target = 0
}
