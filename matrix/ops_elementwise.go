// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels over the flat row-major buffer: Hadamard product,
//     per-element mapping and tolerance comparison.
//
// Determinism & Performance:
//   - Flat loops 0..n-1 over the contiguous buffer; no At/Set round-trips.
//   - Only the output matrix is allocated; O(r*c) time and space.

package matrix

import "math"

const (
	opHadamard = "Hadamard"
	opApply    = "Apply"
	opAllClose = "AllClose"
)

// Hadamard returns the element-wise product out[i,j] = a[i,j] * b[i,j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	out := &Matrix[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range a.data {
		out.data[idx] = a.data[idx] * b.data[idx]
	}

	return out, nil
}

// Apply returns a new matrix with out[i,j] = fn(i, j, m[i,j]).
// fn is called in row-major order exactly once per element; m is not modified.
//
// Errors: ErrNilMatrix.
func Apply[T Number](m *Matrix[T], fn func(i, j int, v T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}

	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	idx := 0
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[idx] = fn(i, j, m.data[idx])
			idx++
		}
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds for every element
// pair, comparing in float64. Use it where Equal is too strict (float results
// of Mul, Determinant or FromGonum).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - Negative tolerances are taken by absolute value; NaN or Inf tolerances
//     are rejected with ErrBadTolerance.
//   - A NaN element never compares close.
//
// Complexity: O(r*c) time, O(1) space; stops at the first violation.
func AllClose[T Number](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = float64(a.data[idx]), float64(b.data[idx])
		// written as !(x ≤ y) so that NaN fails the check
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}
