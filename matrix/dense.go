// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & constructors.
//
// Purpose:
//   - Own a single flat buffer addressed as rows of a fixed, uniform width.
//   - Keep the shape consistent by construction: cols is derived as len/rows.
//   - Validate external flat data exactly once, at the constructor boundary.
//
// Complexity quicksheet:
//   - New/WithCapacity: O(1) (+allocation); FromSlice: O(1) adopt, O(n) copy;
//     Rows/Cols/Shape: O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxWithCapacity  = "WithCapacity"  // ctor tag
	ctxFromSlice     = "FromSlice"     // ctor tag
	ctxFromRows      = "FromRows"      // ctor tag
	ctxRow           = "Row"           // method tag used in error wrappers
	ctxRowMut        = "RowMut"        // method tag used in error wrappers
	ctxRowChecked    = "RowChecked"    // method tag used in error wrappers
	ctxRowMutChecked = "RowMutChecked" // method tag used in error wrappers
	ctxAppendRow     = "AppendRow"     // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and the row index.
// Keep tags in constants for grep-ability.
func denseErrorf(method string, row int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, row, err)
}

// Dense is a row-major matrix over an arbitrary element type.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Row views handed out by Row, RowMut and the iterators alias data. Structural
// mutation (AppendRow, Reset) while views are in use is a caller error: old
// views keep pointing at the storage they were cut from.
type Dense[T any] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// New returns an empty matrix: no rows, no columns, empty buffer.
// Complexity: O(1).
func New[T any]() *Dense[T] {
	return &Dense[T]{data: []T{}}
}

// WithCapacity returns an empty matrix whose buffer can hold rows*cols elements
// without reallocating. The shape stays 0×0 until rows are appended.
// Negative arguments are treated as zero.
//
// Panics with an error wrapping ErrInvalidShape when rows*cols overflows int;
// the product is never silently wrapped.
// Complexity: O(rows*cols) allocation.
func WithCapacity[T any](rows, cols int) *Dense[T] {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if cols != 0 && rows > math.MaxInt/cols {
		panic(fmt.Errorf("Dense.%s(%d,%d): rows*cols overflows int: %w",
			ctxWithCapacity, rows, cols, ErrInvalidShape))
	}

	return &Dense[T]{data: make([]T, 0, rows*cols)}
}

// FromSlice builds a matrix with the given number of rows over a flat
// row-major sequence; cols is derived as len(data)/rows.
// MAIN DESCRIPTION:
//   - The only validated entry point for runtime flat data.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: validate rows>0 and len(data)%rows==0 (ValidateShape).
//   - Stage 3: adopt data, or copy it under WithCopyInput/WithCapacityHint.
//
// Behavior highlights:
//   - Fails fast: no partial construction, no truncation, no padding.
//   - By default the matrix takes ownership of data[:len(data)]; the caller
//     must stop writing through its own slice header. Spare capacity past
//     len(data) is not adopted, so AppendRow never writes into it.
//
// Errors:
//   - ErrInvalidShape wrapped with len, rows and the remainder.
//
// Complexity:
//   - Time O(1) when adopting, O(len(data)) when copying.
func FromSlice[T any](data []T, rows int, opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)

	cols, err := ValidateShape(len(data), rows)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromSlice, err)
	}

	buf := data[:len(data):len(data)]
	if o.copyInput {
		buf = make([]T, len(data), len(data)+o.capacityHint)
		copy(buf, data)
	}
	if buf == nil {
		buf = []T{}
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// MustFromSlice is FromSlice that panics on error.
// Intended for package-level fixtures whose shape is known to be valid.
func MustFromSlice[T any](data []T, rows int, opts ...Option) *Dense[T] {
	m, err := FromSlice(data, rows, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count (0 for a nil matrix). No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil matrix). No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Len returns the number of stored elements (rows*cols).
func (m *Dense[T]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// Cap returns the element capacity of the backing buffer.
func (m *Dense[T]) Cap() int {
	if m == nil {
		return 0
	}

	return cap(m.data)
}

// IsEmpty reports whether the matrix has no rows. A nil matrix is empty.
func (m *Dense[T]) IsEmpty() bool { return m.Rows() == 0 }
