// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors return
// these sentinels wrapped with context; tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Call sites wrap with fmt.Errorf("ctx: %w", ErrX) so the
// offending dimensions travel with the sentinel.
//
// ERROR PRIORITY:
// nil receiver -> shape (rows<=0, remainder) -> jagged literal -> index.

var (
	// ErrInvalidShape is returned when flat data cannot be partitioned into
	// the requested number of equal-width rows (rows<=0 or len%rows != 0),
	// or when an appended row does not match the current width.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrJaggedRows is returned by the literal builder when rows have unequal
	// lengths. Kept apart from ErrInvalidShape: the input is a literal, not
	// runtime flat data.
	ErrJaggedRows = errors.New("matrix: jagged rows in literal")

	// ErrOutOfRange indicates a row index outside [0, rows).
	// Row/RowMut panic with it; RowChecked/RowMutChecked return it.
	ErrOutOfRange = errors.New("matrix: row index out of range")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
