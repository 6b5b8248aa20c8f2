package induction

import "errors"

// Sentinel errors for contract violations in Config (spec.md §7: "bad
// configuration... fail fast at construction; not recoverable").
var (
	ErrInvalidMinSupport    = errors.New("induction: minSupport must be in [0, 1)")
	ErrInvalidMaxConditions = errors.New("induction: maxConditions must be >= 1 or -1")
	ErrInvalidNumThreads    = errors.New("induction: numThreads must be >= 1")
)

// Validate checks Config against the contract violations named in
// spec.md §7.
func (c Config) Validate() error {
	if c.MinSupport < 0 || c.MinSupport >= 1 {
		return ErrInvalidMinSupport
	}
	if c.MaxConditions == 0 || c.MaxConditions < -1 {
		return ErrInvalidMaxConditions
	}
	if c.NumThreads < 1 {
		return ErrInvalidNumThreads
	}

	return nil
}
