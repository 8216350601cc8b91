// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small, deterministic fixtures (seq) and shape-checked constructors.
//   - Flatten a matrix through its row iterator for round-trip assertions.
//   - Assert that a call panics with an error wrapping a given sentinel.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowmajor/matrix"
	"github.com/stretchr/testify/require"
)

// seq returns [1, 2, ..., n]; distinct values make aliasing bugs visible.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// mustFromSlice builds a matrix or fails the test.
func mustFromSlice[T any](t testing.TB, data []T, rows int, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromSlice(data, rows, opts...)
	require.NoError(t, err)

	return m
}

// flatten concatenates every row yielded by Iter.
func flatten[T any](m *matrix.Dense[T]) []T {
	out := make([]T, 0, m.Len())
	it := m.Iter()
	for row, ok := it.Next(); ok; row, ok = it.Next() {
		out = row.AppendTo(out)
	}

	return out
}

// requirePanicsWithSentinel runs fn and requires a panic whose value is an
// error matching sentinel via errors.Is.
func requirePanicsWithSentinel(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		require.ErrorIs(t, err, sentinel)
	}()
	fn()
}
