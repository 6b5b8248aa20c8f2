package refinement

// Config gates the operator forms C8 is allowed to emit (spec.md §6,
// compile-time flags USE_LEQ/USE_NEQ rendered here as an ordinary
// functional-options-free struct, since neither flag takes a value: a Go
// build has no compile-time-conditional codegen equivalent, and a plain
// struct field matches the teacher's own Options-struct idiom for
// runtime-checked configuration).
type Config struct {
	// UseLEQ enables ≤ conditions on numerical features. Default on.
	UseLEQ bool

	// UseNEQ enables ≠ conditions on nominal features. Default off.
	UseNEQ bool
}

// DefaultConfig returns the spec's default gating: USE_LEQ on, USE_NEQ
// off (spec.md §6).
func DefaultConfig() Config {
	return Config{UseLEQ: true, UseNEQ: false}
}
