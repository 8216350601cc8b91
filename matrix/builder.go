// SPDX-License-Identifier: MIT

// Package matrix - literal builder.
//
// FromRows turns a rectangular literal into a Dense matrix:
//
//	m, err := matrix.FromRows(
//		[]int{1, 2, 3},
//		[]int{4, 5, 6},
//	)
//
// Row lengths are validated once, before any storage is allocated. A ragged
// literal fails with ErrJaggedRows, which is deliberately not ErrInvalidShape.
// MustFromRows panics instead and suits package-level fixtures, where a bad
// literal then aborts program initialisation.

package matrix

import "fmt"

// FromRows builds a matrix from rows listed explicitly.
//
// Implementation:
//   - Stage 1: ValidateRowLengths (first row fixes the width).
//   - Stage 2: allocate rows*width and copy row by row.
//
// Behavior highlights:
//   - The result never aliases the argument slices.
//   - No rows yields an empty matrix (same as New).
//
// Errors:
//   - ErrJaggedRows naming the offending row, its length and the expected width.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows ...[]T) (*Dense[T], error) {
	width, err := ValidateRowLengths(rows)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, err)
	}
	if len(rows) == 0 {
		return New[T](), nil
	}

	buf := make([]T, 0, len(rows)*width)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Dense[T]{r: len(rows), c: width, data: buf}, nil
}

// MustFromRows is FromRows that panics on a ragged literal.
func MustFromRows[T any](rows ...[]T) *Dense[T] {
	m, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}

	return m
}
