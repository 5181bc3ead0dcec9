// SPDX-License-Identifier: MIT
// Package matrix - convenience constructors.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common shapes.
//   - Each facade delegates allocation to New.

package matrix

import "fmt"

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewFromRows builds a matrix from row slices, copying every element.
// An empty (or nil) input yields a 0×0 matrix; len(rows)×0 is produced when
// every row is empty.
//
// Errors:
//   - ErrDimensionMismatch when rows have different lengths.
func NewFromRows[T Number](rows [][]T) (*Matrix[T], error) {
	r := len(rows)
	if r == 0 {
		return New[T](0, 0)
	}

	c := len(rows[0])
	m, err := New[T](r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New[T](m.r, m.c)
}

// ToRows returns a copy of m as row slices. Useful for table-driven comparisons.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = append([]T(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}
