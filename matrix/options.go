// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for validated construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts FromSlice and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCopyInput controls whether FromSlice copies the caller's slice.
	// false ⇒ the matrix takes ownership of the slice (no allocation); the
	// caller must not keep using it.
	DefaultCopyInput = false

	// DefaultCapacityHint is the extra element capacity reserved by FromSlice
	// when it copies input. Ignored when the input is adopted as-is.
	DefaultCapacityHint = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityHintInvalid = "matrix: WithCapacityHint: n must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	copyInput    bool // DefaultCopyInput
	capacityHint int  // DefaultCapacityHint, >= 0
}

// WithCopyInput makes FromSlice copy the caller's data into a fresh buffer.
// Use it when the caller keeps writing to its slice after construction.
func WithCopyInput() Option {
	return func(o *Options) { o.copyInput = true }
}

// WithNoCopyInput makes FromSlice adopt the caller's slice (default).
func WithNoCopyInput() Option {
	return func(o *Options) { o.copyInput = false }
}

// WithCapacityHint reserves n extra elements of capacity when FromSlice copies,
// so a following run of AppendRow calls does not reallocate.
// Implies WithCopyInput.
//
// Panics with a stable message when n < 0.
func WithCapacityHint(n int) Option {
	if n < 0 {
		panic(panicCapacityHintInvalid)
	}

	return func(o *Options) {
		o.capacityHint = n
		o.copyInput = true
	}
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		copyInput:    DefaultCopyInput,
		capacityHint: DefaultCapacityHint,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}
