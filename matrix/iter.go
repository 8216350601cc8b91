// SPDX-License-Identifier: MIT

// Package matrix - row-wise traversal.
//
// Purpose:
//   - RowIter yields read-only views, RowIterMut yields mutable row slices.
//   - Both walk a private slice header over the buffer and carve one row off
//     its front per step (rest[:c:c], then rest = rest[c:]). Each row is cut
//     exactly once from the untouched tail, so yielded mutable rows are
//     pairwise disjoint, and each of them pins the backing array it came from.
//   - Shape is snapshotted at creation; later AppendRow/Reset calls on the
//     matrix do not change what an existing iterator yields.
//
// State machine:
//   - Active(i) --Next, i<n--> Active(i+1) yielding row i
//   - Active(n) --Next-->      Done, yielding nothing; Done is absorbing.

package matrix

import "iter"

// rowCursor is the shared disjoint-partition walker behind both iterators.
type rowCursor[T any] struct {
	rest []T // not-yet-yielded tail of the buffer
	c    int // row width
	i, n int // next row index, row count at creation
}

func newRowCursor[T any](m *Dense[T]) rowCursor[T] {
	if m == nil {
		return rowCursor[T]{}
	}

	return rowCursor[T]{rest: m.data[:len(m.data):len(m.data)], c: m.c, n: m.r}
}

// next splits the next row off the tail. ok is false once exhausted, forever.
func (rc *rowCursor[T]) next() (row []T, ok bool) {
	if rc.i >= rc.n {
		return nil, false
	}
	row, rc.rest = rc.rest[:rc.c:rc.c], rc.rest[rc.c:]
	rc.i++

	return row, true
}

func (rc *rowCursor[T]) remaining() int { return rc.n - rc.i }

// RowIter walks the rows of a matrix as read-only views.
type RowIter[T any] struct {
	cur rowCursor[T]
}

// Iter returns an iterator positioned before row 0. A nil matrix yields nothing.
func (m *Dense[T]) Iter() *RowIter[T] {
	return &RowIter[T]{cur: newRowCursor(m)}
}

// Next returns the next row, or ok=false when the iterator is exhausted.
// Calling Next after exhaustion keeps returning ok=false.
func (it *RowIter[T]) Next() (View[T], bool) {
	row, ok := it.cur.next()
	if !ok {
		return View[T]{}, false
	}

	return View[T]{row: row}, true
}

// Remaining returns how many rows Next will still yield.
func (it *RowIter[T]) Remaining() int { return it.cur.remaining() }

// RowIterMut walks the rows of a matrix as mutable slices.
// Each yielded slice has capacity Cols() and never overlaps another yielded slice.
type RowIterMut[T any] struct {
	cur rowCursor[T]
}

// IterMut returns a mutable iterator positioned before row 0.
// While it is in use the caller must not take other views of the matrix.
func (m *Dense[T]) IterMut() *RowIterMut[T] {
	return &RowIterMut[T]{cur: newRowCursor(m)}
}

// Next returns the next row, or ok=false when the iterator is exhausted.
func (it *RowIterMut[T]) Next() ([]T, bool) {
	return it.cur.next()
}

// Remaining returns how many rows Next will still yield.
func (it *RowIterMut[T]) Remaining() int { return it.cur.remaining() }

// All is the range-over-func form of Iter:
//
//	for i, row := range m.All() { ... }
func (m *Dense[T]) All() iter.Seq2[int, View[T]] {
	return func(yield func(int, View[T]) bool) {
		it := m.Iter()
		for i := 0; ; i++ {
			row, ok := it.Next()
			if !ok || !yield(i, row) {
				return
			}
		}
	}
}

// AllMut is the range-over-func form of IterMut.
func (m *Dense[T]) AllMut() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		it := m.IterMut()
		for i := 0; ; i++ {
			row, ok := it.Next()
			if !ok || !yield(i, row) {
				return
			}
		}
	}
}
