// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape and index checks.
//   - Return sentinels wrapped with a validator tag so call sites stay uniform.
//
// Determinism & Performance:
//   - All checks are pure and allocate only on failure.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape reports whether n elements can be split into rows equal-width rows.
// On success it returns the derived column count.
//
// Errors: ErrInvalidShape when rows <= 0 or n%rows != 0.
// Complexity: O(1).
func ValidateShape(n, rows int) (cols int, err error) {
	if rows <= 0 {
		return 0, validatorErrorf(
			fmt.Sprintf("ValidateShape(len=%d, rows=%d): rows must be > 0", n, rows),
			ErrInvalidShape)
	}
	if rem := n % rows; rem != 0 {
		return 0, validatorErrorf(
			fmt.Sprintf("ValidateShape(len=%d, rows=%d): remainder %d", n, rows, rem),
			ErrInvalidShape)
	}

	return n / rows, nil
}

// ValidateRowLengths checks that every row has the same length as the first.
// On success it returns that common width (0 when rows is empty).
//
// Errors: ErrJaggedRows naming the first offending row, its length and the
// expected width.
// Complexity: O(len(rows)).
func ValidateRowLengths[T any](rows [][]T) (width int, err error) {
	if len(rows) == 0 {
		return 0, nil
	}
	width = len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return 0, validatorErrorf(
				fmt.Sprintf("ValidateRowLengths: row %d has %d elements, expected %d", i, len(rows[i]), width),
				ErrJaggedRows)
		}
	}

	return width, nil
}

// ValidateRowIndex checks 0 <= i < rows.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateRowIndex(i, rows int) error {
	// A single unsigned compare also rejects negatives.
	if uint(i) >= uint(rows) {
		return validatorErrorf(
			fmt.Sprintf("ValidateRowIndex(%d, rows=%d)", i, rows),
			ErrOutOfRange)
	}

	return nil
}
