// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// View is a read-only window over one row of a Dense matrix.
// It aliases the matrix buffer: writes made through RowMut are visible here.
// The zero View is an empty row.
type View[T any] struct {
	row []T
}

// Len returns the row width.
func (v View[T]) Len() int { return len(v.row) }

// At returns element j. Panics when j is outside [0, Len()), like slice indexing.
func (v View[T]) At(j int) T { return v.row[j] }

// CopyTo copies the row into dst and returns the number of elements copied.
func (v View[T]) CopyTo(dst []T) int { return copy(dst, v.row) }

// AppendTo appends the row to dst and returns the extended slice.
func (v View[T]) AppendTo(dst []T) []T { return append(dst, v.row...) }

// Clone returns a copy of the row that does not alias the matrix.
func (v View[T]) Clone() []T {
	cp := make([]T, len(v.row))
	copy(cp, v.row)

	return cp
}

// All yields (column, element) pairs left to right.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for j, e := range v.row {
			if !yield(j, e) {
				return
			}
		}
	}
}

// String renders the row as "[a, b, c]".
func (v View[T]) String() string {
	var b strings.Builder
	writeRow(&b, v.row, _fmtElem)

	return b.String()
}

// writeRow writes "[e0, e1, ...]" formatting every element with elemFmt.
func writeRow[T any](b *strings.Builder, row []T, elemFmt string) {
	b.WriteString(_fmtRowOpen)
	for j, e := range row {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(b, elemFmt, e)
	}
	b.WriteString(_fmtRowEnd)
}
