// Package matrix_test contains unit tests for Dense row indexing and growth.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowmajor/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowsCols verifies that Rows() and Cols() return the derived shape.
func TestRowsCols(t *testing.T) {
	m := mustFromSlice(t, seq(12), 3) // 3x4

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Len())
}

// TestRowOutOfRange: Row/RowMut panic with ErrOutOfRange, never clamp.
func TestRowOutOfRange(t *testing.T) {
	m := mustFromSlice(t, seq(6), 3)

	for _, i := range []int{-1, 3, 100} {
		i := i
		requirePanicsWithSentinel(t, matrix.ErrOutOfRange, func() { m.Row(i) })
		requirePanicsWithSentinel(t, matrix.ErrOutOfRange, func() { m.RowMut(i) })
	}
}

// TestRowChecked returns errors instead of panicking.
func TestRowChecked(t *testing.T) {
	m := mustFromSlice(t, seq(6), 3)

	row, err := m.RowChecked(2)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6}, row.Clone())

	_, err = m.RowChecked(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowChecked(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	mut, err := m.RowMutChecked(0)
	require.NoError(t, err)
	mut[1] = 20
	require.Equal(t, 20, m.Row(0).At(1))

	_, err = m.RowMutChecked(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilM *matrix.Dense[int]
	_, err = nilM.RowChecked(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = nilM.RowMutChecked(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRowMutWritesThrough: element writes via RowMut land in the matrix.
func TestRowMutWritesThrough(t *testing.T) {
	m := mustFromSlice(t, seq(6), 2) // [1 2 3] [4 5 6]

	r := m.RowMut(1)
	r[0], r[2] = -4, -6

	require.Equal(t, []int{1, 2, 3}, m.Row(0).Clone())
	require.Equal(t, []int{-4, 5, -6}, m.Row(1).Clone())
	require.Equal(t, []int{1, 2, 3, -4, 5, -6}, m.Data())
}

// TestRowMutCapacityCapped: append on a row view never touches the next row.
func TestRowMutCapacityCapped(t *testing.T) {
	m := mustFromSlice(t, seq(6), 3)

	r := m.RowMut(0)
	require.Equal(t, 2, cap(r))

	r = append(r, 99)
	r[0] = 42
	require.Equal(t, []int{1, 2}, m.Row(0).Clone())
	require.Equal(t, []int{3, 4}, m.Row(1).Clone())
}

// TestRowsAreIndependentSlices: immutable views may coexist.
func TestRowsAreIndependentSlices(t *testing.T) {
	m := mustFromSlice(t, seq(6), 3)

	a, b, c := m.Row(0), m.Row(1), m.Row(2)
	require.Equal(t, "[1, 2][3, 4][5, 6]", a.String()+b.String()+c.String())
}

// TestAppendRow covers growth from empty, from reserved capacity and width mismatch.
func TestAppendRow(t *testing.T) {
	m := matrix.WithCapacity[int](3, 2)
	before := m.Cap()

	require.NoError(t, m.AppendRow([]int{1, 2}))
	require.NoError(t, m.AppendRow([]int{3, 4}))
	require.NoError(t, m.AppendRow([]int{5, 6}))
	require.Equal(t, before, m.Cap(), "reserved capacity must absorb the appends")

	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, seq(6), flatten(m))

	err := m.AppendRow([]int{7})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.Contains(t, err.Error(), "got 1 elements, expected 2")
	require.Equal(t, 3, m.Rows(), "failed append must not change the shape")

	var nilM *matrix.Dense[int]
	require.ErrorIs(t, nilM.AppendRow([]int{1}), matrix.ErrNilMatrix)
}

// TestAppendRowCopies: the matrix does not alias the appended slice.
func TestAppendRowCopies(t *testing.T) {
	m := matrix.New[int]()
	src := []int{1, 2, 3}
	require.NoError(t, m.AppendRow(src))

	src[0] = 100
	require.Equal(t, 1, m.Row(0).At(0))
}

// TestReset drops rows but keeps the allocation.
func TestReset(t *testing.T) {
	m := mustFromSlice(t, seq(6), 2, matrix.WithCopyInput())
	capBefore := m.Cap()

	m.Reset()
	require.True(t, m.IsEmpty())
	require.Zero(t, m.Cols())
	require.Zero(t, m.Len())
	require.Equal(t, capBefore, m.Cap())

	// width is free again after a reset
	require.NoError(t, m.AppendRow([]int{9, 9, 9, 9}))
	require.Equal(t, 4, m.Cols())
}

// TestCloneIndependence ensures Clone() returns a deep copy of the buffer.
func TestCloneIndependence(t *testing.T) {
	m := mustFromSlice(t, seq(4), 2)
	cl := m.Clone()

	cl.RowMut(0)[0] = 30
	require.Equal(t, 1, m.Row(0).At(0))
	require.Equal(t, 30, cl.Row(0).At(0))

	r, c := cl.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
}

// TestDataCapped: Data exposes exactly Len elements.
func TestDataCapped(t *testing.T) {
	m := mustFromSlice(t, seq(4), 2, matrix.WithCapacityHint(8))

	d := m.Data()
	require.Len(t, d, 4)
	require.Equal(t, 4, cap(d))
}

// TestNilMatrix: every method has a defined outcome on a nil receiver.
func TestNilMatrix(t *testing.T) {
	var m *matrix.Dense[int]

	r, c := m.Shape()
	require.Zero(t, r)
	require.Zero(t, c)
	require.Zero(t, m.Len())
	require.Zero(t, m.Cap())
	require.True(t, m.IsEmpty())
	require.Nil(t, m.Data())
	require.Nil(t, m.Clone())
	require.NotPanics(t, m.Reset)

	requirePanicsWithSentinel(t, matrix.ErrNilMatrix, func() { m.Row(0) })
	requirePanicsWithSentinel(t, matrix.ErrNilMatrix, func() { m.RowMut(0) })
}
