// Package matrix offers Dense, a generic row-major 2D container.
//
// The matrix package provides:
//
//   - Construction: New (empty), WithCapacity (reserved, logically empty),
//     FromSlice (validated flat data + row count; cols derived), FromRows
//     (rectangular literal, ragged input rejected with ErrJaggedRows).
//   - Indexing: Row (read-only View) and RowMut (mutable []T), O(1) and
//     without copying. Out-of-range rows panic with ErrOutOfRange; the
//     RowChecked/RowMutChecked variants return it instead.
//   - Traversal: Iter/IterMut (Next until ok==false, exhaustion is sticky) and
//     All/AllMut for range-over-func loops.
//   - Growth: AppendRow, Reset. Clone for an independent copy.
//
// Aliasing rules:
//
//	Views alias the matrix buffer. Any number of read-only views may be held
//	together. While a mutable view or IterMut is in use, take no other views.
//	Do not AppendRow/Reset while views or iterators are alive: they keep the
//	storage they were cut from and will not see later changes.
//
// Not provided: arithmetic, jagged rows, serialization, concurrent access.
package matrix
