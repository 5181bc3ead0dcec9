// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and properties.
//   • Keep fixture builders generic so the same helper serves int and float tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// refDet4 is the reference 4×4 integer matrix with determinant 19.
var refDet4 = [][]int{
	{1, 1, -2, -1},
	{2, 1, 1, -3},
	{4, -1, -2, 1},
	{-1, 0, -3, 3},
}

// MustNew ALLOCATES an r×c zero matrix or fails the test.
func MustNew[T matrix.Number](t require.TestingT, r, c int) *matrix.Matrix[T] {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	m, err := matrix.New[T](r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows BUILDS a matrix from literal rows or fails the test.
func MustFromRows[T matrix.Number](t require.TestingT, rows [][]T) *matrix.Matrix[T] {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustFromFlat BUILDS an r×c matrix from row-major vals (len == r*c).
func MustFromFlat[T matrix.Number](t require.TestingT, r, c int, vals []T) *matrix.Matrix[T] {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Len(t, vals, r*c)
	m := MustNew[T](t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, vals[i*c+j]))
		}
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt[T matrix.Number](t *testing.T, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// genIntMatrix draws an r×c matrix with small integer entries.
func genIntMatrix(r, c int) *rapid.Generator[*matrix.Matrix[int]] {
	return rapid.Custom(func(t *rapid.T) *matrix.Matrix[int] {
		vals := rapid.SliceOfN(rapid.IntRange(-20, 20), r*c, r*c).Draw(t, "vals")
		return MustFromFlat(t, r, c, vals)
	})
}

// genShape draws a matrix shape, zero dimensions included.
func genShape(t *rapid.T, maxDim int) (int, int) {
	return rapid.IntRange(0, maxDim).Draw(t, "rows"), rapid.IntRange(0, maxDim).Draw(t, "cols")
}
