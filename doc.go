// Package rowmajor is a minimal dense 2D container for Go: one flat buffer,
// addressed as rows of a fixed, uniform width.
//
// What is inside?
//
//	matrix/ — Dense[T] with row-major storage, read-only and mutable row views,
//	          row iterators (Next-style and range-over-func), a literal builder
//	          and a human-readable rendering.
//
// Why?
//
//   - Any element type: no numeric constraint on T.
//   - O(1) row access: a row is a sub-slice, never a copy.
//   - Safe mutable traversal: rows handed out by IterMut are carved from a
//     disjoint partition of the buffer, so holding several at once is fine.
//
// Quick example:
//
//	m, _ := matrix.FromSlice([]int{1, 2, 3, 4, 5, 6}, 3)
//	for _, row := range m.AllMut() {
//		row[0] *= 10
//	}
//	fmt.Print(m) // [10, 2]\n[30, 4]\n[50, 6]\n
//
// No arithmetic, no jagged rows, no serialization: see matrix/doc.go.
//
//	go get github.com/katalvlaran/rowmajor
package rowmajor
