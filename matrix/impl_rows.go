// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - In-place RowAdd / RowScale / RowSwap on a single matrix.
//   - RowChain: a fluent wrapper that lets callers compose several row
//     operations in one expression while still surfacing errors.
//
// Contract:
//   - Every index is validated before the first write; a failing call leaves
//     the matrix unchanged.
//   - Only the targeted row(s) are touched.

package matrix

import "fmt"

const (
	opRowAdd   = "RowAdd"
	opRowScale = "RowScale"
	opRowSwap  = "RowSwap"
)

// RowAdd adds row src into row dst element-wise: dst[j] += src[j].
// dst == src doubles the row.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (either index outside [0, Rows())).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Matrix[T]) RowAdd(dst, src int) error {
	if err := m.checkRows(opRowAdd, dst, src); err != nil {
		return err
	}

	d, s := dst*m.c, src*m.c
	for j := 0; j < m.c; j++ {
		m.data[d+j] += m.data[s+j]
	}

	return nil
}

// RowScale multiplies every element of row dst by value.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Matrix[T]) RowScale(dst int, value T) error {
	if err := m.checkRows(opRowScale, dst); err != nil {
		return err
	}

	row := m.data[dst*m.c : (dst+1)*m.c]
	for j := range row {
		row[j] *= value
	}

	return nil
}

// RowSwap exchanges rows r1 and r2 in place; all other rows are unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1) (no scratch copy).
func (m *Matrix[T]) RowSwap(r1, r2 int) error {
	if err := m.checkRows(opRowSwap, r1, r2); err != nil {
		return err
	}
	if r1 != r2 {
		m.swapRows(r1, r2)
	}

	return nil
}

// swapRows exchanges two valid, distinct rows without validation.
func (m *Matrix[T]) swapRows(r1, r2 int) {
	a, b := r1*m.c, r2*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}
}

// checkRows validates the receiver and every row index for the tagged op.
func (m *Matrix[T]) checkRows(op string, rows ...int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(op, err)
	}
	for _, r := range rows {
		if err := validateRow(m, r); err != nil {
			return matrixErrorf(op, err)
		}
	}

	return nil
}

// RowChain composes row operations on one matrix.
//
//	err := m.RowOps().RowAdd(0, 1).RowScale(0, 2).RowSwap(0, 1).Err()
//
// The first failing step is recorded and every later step becomes a no-op, so
// the matrix reflects exactly the steps that preceded the failure.
type RowChain[T Number] struct {
	m   *Matrix[T]
	err error
}

// RowOps starts a chain of row operations on m.
func (m *Matrix[T]) RowOps() *RowChain[T] {
	return &RowChain[T]{m: m}
}

// RowAdd applies Matrix.RowAdd unless an earlier step failed.
func (rc *RowChain[T]) RowAdd(dst, src int) *RowChain[T] {
	if rc.err == nil {
		rc.err = rc.m.RowAdd(dst, src)
	}

	return rc
}

// RowScale applies Matrix.RowScale unless an earlier step failed.
func (rc *RowChain[T]) RowScale(dst int, value T) *RowChain[T] {
	if rc.err == nil {
		rc.err = rc.m.RowScale(dst, value)
	}

	return rc
}

// RowSwap applies Matrix.RowSwap unless an earlier step failed.
func (rc *RowChain[T]) RowSwap(r1, r2 int) *RowChain[T] {
	if rc.err == nil {
		rc.err = rc.m.RowSwap(r1, r2)
	}

	return rc
}

// Err returns the first error encountered by the chain, or nil.
func (rc *RowChain[T]) Err() error {
	return rc.err
}

// Matrix returns the (mutated) matrix together with the chain's first error.
func (rc *RowChain[T]) Matrix() (*Matrix[T], error) {
	if rc.err != nil {
		return rc.m, fmt.Errorf("RowOps: %w", rc.err)
	}

	return rc.m, nil
}
