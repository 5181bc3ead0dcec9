// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Matrix[T]: element-wise
// addition and subtraction, scalar scaling (both operand orders), matrix
// multiplication and transposition. All kernels perform fail-fast validation
// and return wrapped sentinels on shape mismatches.
//
// Notes:
//   - Every kernel allocates its result; operands are never mutated.
//   - The *Assign methods compute into fresh storage first and only then
//     replace the receiver, so m.MulAssign(m) is safe.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (subtract=false) or a - b (subtract=true).
// Shared by Add/Sub for validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..r*c-1 over both buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *Matrix[T], subtract bool, opTag string) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Matrix[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	if subtract {
		for idx := range res.data {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range res.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Sum the flat buffers in index order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// AddAssign replaces m with Add(m, b). On error m is left untouched.
func (m *Matrix[T]) AddAssign(b *Matrix[T]) error {
	res, err := Add(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// SubAssign replaces m with Sub(m, b). On error m is left untouched.
func (m *Matrix[T]) SubAssign(b *Matrix[T]) error {
	res, err := Sub(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// Scale returns a new matrix with every element of m multiplied by k (m·k).
// Errors: ErrNilMatrix only; scaling has no shape requirement.
// Complexity: O(r*c).
func Scale[T Number](m *Matrix[T], k T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * k
	}

	return res, nil
}

// ScaleLeft returns k·m. It yields exactly the same elements as Scale(m, k);
// the separate entry point mirrors scalar-on-the-left notation.
func ScaleLeft[T Number](k T, m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = k * v
	}

	return res, nil
}

// ScaleAssign replaces m with Scale(m, k).
func (m *Matrix[T]) ScaleAssign(k T) error {
	res, err := Scale(m, k)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; C[i,j] accumulates Σ_k A[i,k]*B[k,j] in T.
//
// Behavior highlights:
//   - Deterministic loop order; no blocking or Strassen tricks; one allocation for C.
//   - A (r×0) times B (0×c) yields an r×c zero matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.r, a.c, b.c
	res := &Matrix[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols)}

	var (
		i, j, k int // loop iterators
		sum     T   // accumulator for one output cell
	)
	for i = 0; i < aRows; i++ {
		rowA := a.data[i*inner : (i+1)*inner] // row i of A
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += rowA[k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// MulAssign replaces m with Mul(m, b). The product is fully computed before m
// changes, so b may be m itself. On error m is left untouched.
func (m *Matrix[T]) MulAssign(b *Matrix[T]) error {
	res, err := Mul(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := &Matrix[T]{r: cols, c: rows, data: make([]T, len(m.data))}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j] // data[i*cols+j] → res[j*rows+i]
		}
	}

	return res, nil
}
