// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Matrix[T] to gonum's float64 kernels (SVD, Solve, Eigen, …) and
//     bring results back as a Matrix[T].
//
// Numeric policy:
//   - Export converts every element with float64(v).
//   - Import converts with T(v): fractions truncate toward zero for integer T.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrBadShape when m has a zero dimension (gonum cannot hold empty matrices).
//
// Complexity: O(r*c).
func ToGonum[T Number](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", m.r, m.c, ErrBadShape)
	}

	buf := make([]float64, len(m.data))
	for i, v := range m.data {
		buf[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Matrix[T].
//
// Errors:
//   - ErrNilMatrix when a is nil.
//
// Complexity: O(r*c).
func FromGonum[T Number](a mat.Matrix) (*Matrix[T], error) {
	if a == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}

	r, c := a.Dims()
	m, err := New[T](r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = T(a.At(i, j))
		}
	}

	return m, nil
}
