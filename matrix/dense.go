// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep storage exclusively owned: no two Matrix values ever share a buffer.
//
// Complexity quicksheet:
//   - New/NewFilled: O(r*c); At/Set: O(1); Clone/Assign: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxNew    = "New"    // ctor tag
	ctxAssign = "Assign" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Produces "Matrix.<method>(row,col): <sentinel>" and preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a generic row-major dense matrix.
//   - r,c hold dimensions (rows, cols), both >= 0 and fixed once built.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Always construct through New, NewFilled or another constructor; the shape
// is part of every matrix's identity.
type Matrix[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix with every element set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make zero-fills deterministically).
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 shapes are legal and hold no elements.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows×cols matrix with every element set to value.
// Complexity: O(r*c).
func NewFilled[T Number](rows, cols int, value T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if value != 0 { // buffer is already zeroed
		for i := range m.data {
			m.data[i] = value
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method tag.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange when indices are invalid; the matrix is left untouched.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix. The copy shares no storage with m.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: buf}
}

// Assign deep-copies src into m, replacing m's shape and storage entirely.
// MAIN DESCRIPTION:
//   - Copy-on-assign: after Assign, m and src are equal but independent.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//   - m's previous buffer is released, never resized in place.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if m == src {
		return nil
	}
	m.replace(src.Clone())

	return nil
}

// replace moves the shape and buffer of fresh into m.
// fresh must not be referenced by the caller afterwards.
func (m *Matrix[T]) replace(fresh *Matrix[T]) {
	m.r, m.c, m.data = fresh.r, fresh.c, fresh.data
}

// Equal reports whether m and other have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
