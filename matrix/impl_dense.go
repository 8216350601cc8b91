// SPDX-License-Identifier: MIT

// Package matrix - Dense row indexing & structural mutation.
//
// Purpose:
//   - O(1) row access by offset arithmetic: row i is data[i*c : i*c+c].
//   - Every view is cut with a full slice expression so its capacity ends at
//     the row boundary; append on a view never spills into the next row or
//     into reserved capacity.
//   - Out-of-range indices fail deterministically. Row/RowMut panic with an
//     error wrapping ErrOutOfRange (same contract as Go slice indexing);
//     RowChecked/RowMutChecked return it. Indices are never clamped.
//
// Complexity quicksheet:
//   - Row/RowMut/RowChecked/RowMutChecked: O(1); AppendRow: amortized O(c);
//     Clone: O(r*c); Reset: O(1).

package matrix

import "fmt"

// rowSlice cuts row i out of the buffer or panics with a wrapped sentinel:
// ErrNilMatrix for a nil receiver, ErrOutOfRange otherwise.
// The single unsigned compare rejects negatives and i >= r alike.
func (m *Dense[T]) rowSlice(method string, i int) []T {
	if m == nil {
		panic(denseErrorf(method, i, ErrNilMatrix))
	}
	if uint(i) >= uint(m.r) {
		panic(denseErrorf(method, i, ErrOutOfRange))
	}
	lo := i * m.c
	hi := lo + m.c

	return m.data[lo:hi:hi]
}

// Row returns a read-only view over row i.
// MAIN DESCRIPTION:
//   - Hot-path accessor; no copy, no error value.
//
// Inputs:
//   - i: zero-based row index; caller guarantees 0 <= i < Rows().
//
// Errors:
//   - Panics with an error wrapping ErrOutOfRange when i is out of range,
//     or ErrNilMatrix on a nil receiver.
//     Use RowChecked when the index comes from untrusted input.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Row(i int) View[T] {
	return View[T]{row: m.rowSlice(ctxRow, i)}
}

// RowMut returns a mutable view over row i. Writes through the returned slice
// land in the matrix. Its capacity equals Cols(), so append reallocates
// instead of overwriting row i+1.
//
// Panics with an error wrapping ErrOutOfRange when i is out of range,
// or ErrNilMatrix on a nil receiver.
// Complexity: O(1).
func (m *Dense[T]) RowMut(i int) []T {
	return m.rowSlice(ctxRowMut, i)
}

// RowChecked is the error-returning form of Row.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when i is not in [0, Rows()).
func (m *Dense[T]) RowChecked(i int) (View[T], error) {
	if m == nil {
		return View[T]{}, denseErrorf(ctxRowChecked, i, ErrNilMatrix)
	}
	if err := ValidateRowIndex(i, m.r); err != nil {
		return View[T]{}, denseErrorf(ctxRowChecked, i, err)
	}

	return View[T]{row: m.rowSlice(ctxRowChecked, i)}, nil
}

// RowMutChecked is the error-returning form of RowMut.
func (m *Dense[T]) RowMutChecked(i int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf(ctxRowMutChecked, i, ErrNilMatrix)
	}
	if err := ValidateRowIndex(i, m.r); err != nil {
		return nil, denseErrorf(ctxRowMutChecked, i, err)
	}

	return m.rowSlice(ctxRowMutChecked, i), nil
}

// AppendRow grows the matrix by one row, copying the elements of row.
// MAIN DESCRIPTION:
//   - Growth-by-append; pairs with WithCapacity to avoid reallocation.
//
// Implementation:
//   - Stage 1: on a matrix with no rows, len(row) fixes the width.
//   - Stage 2: otherwise require len(row) == Cols().
//   - Stage 3: append to the buffer and bump the row count.
//
// Behavior highlights:
//   - Structural mutation: may reallocate the buffer. Views and iterators
//     taken before the call keep referring to the old storage.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrInvalidShape when the width does not match.
//
// Complexity:
//   - Amortized O(len(row)).
func (m *Dense[T]) AppendRow(row []T) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxAppendRow, ErrNilMatrix)
	}
	if m.r == 0 {
		m.c = len(row)
		m.data = m.data[:0]
	} else if len(row) != m.c {
		return fmt.Errorf("Dense.%s(row %d): got %d elements, expected %d: %w",
			ctxAppendRow, m.r, len(row), m.c, ErrInvalidShape)
	}
	m.data = append(m.data, row...)
	m.r++

	return nil
}

// Reset drops every row and keeps the allocation for reuse.
// Structural mutation; see AppendRow. No-op on a nil matrix.
func (m *Dense[T]) Reset() {
	if m == nil {
		return
	}
	m.r, m.c = 0, 0
	m.data = m.data[:0]
}

// Clone returns an independent copy with the same shape.
// Elements are copied by assignment; pointer-like T still share referents.
// Clone of a nil matrix is nil.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Data returns the flat row-major buffer (len == Rows()*Cols()).
// The slice aliases the matrix; its capacity is capped at its length.
// A nil matrix has no data.
func (m *Dense[T]) Data() []T {
	if m == nil {
		return nil
	}

	return m.data[:len(m.data):len(m.data)]
}
