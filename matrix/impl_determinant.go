// SPDX-License-Identifier: MIT

// Package matrix - determinants.
//
// Purpose:
//   - Determinant: recursive cofactor expansion along the first row (reference semantics).
//   - DeterminantWith: same contract, algorithm selected by options; Elimination
//     runs fraction-free Bareiss elimination in O(n³).
//
// Numeric policy (cofactor):
//   - 1×1 and 2×2 are computed in T arithmetic.
//   - Each expansion term (-1)^x * a(0,x) * det(minor) is evaluated in float64
//     and converted to T before being added to the running sum.
//
// Notes:
//   - Every recursive call works on a freshly built minor; no storage is shared.
//   - A 0×0 matrix has determinant equal to the zero value of T.

package matrix

const opDeterminant = "Determinant"

// Determinant returns det(m) by cofactor expansion.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (Rows != Cols).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *Matrix[T]) Determinant() (T, error) {
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(m), nil
}

// DeterminantWith returns det(m) using the algorithm selected by opts
// (see WithDeterminantMethod).
//
// Behavior highlights:
//   - Elimination returns exactly the cofactor result for signed integer T
//     whenever intermediate values fit in T; for floats the two may differ by
//     rounding.
//   - Unsigned T and n ≤ 2 always use cofactor expansion.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
func DeterminantWith[T Number](m *Matrix[T], opts ...Option) (T, error) {
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	o := gatherOptions(opts...)
	if o.detMethod == Elimination && m.r > 2 && !isUnsigned[T]() {
		return bareissDet(m), nil
	}

	return cofactorDet(m), nil
}

// cofactorDet expands along row 0. a must be square.
func cofactorDet[T Number](a *Matrix[T]) T {
	n := a.r
	switch n {
	case 0:
		return 0
	case 1:
		return a.data[0]
	case 2:
		return a.data[0]*a.data[3] - a.data[1]*a.data[2]
	}

	var det T
	sign := 1.0 // (-1)^x
	for x := 0; x < n; x++ {
		minor := a.minor(0, x)
		det += T(sign * float64(a.data[x]) * float64(cofactorDet(minor)))
		sign = -sign
	}

	return det
}

// minor returns a fresh (n-1)×(n-1) matrix: a without row skipRow and column skipCol.
func (m *Matrix[T]) minor(skipRow, skipCol int) *Matrix[T] {
	n := m.r
	out := &Matrix[T]{r: n - 1, c: n - 1, data: make([]T, 0, (n-1)*(n-1))}
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		for j := 0; j < n; j++ {
			if j != skipCol {
				out.data = append(out.data, m.data[i*n+j])
			}
		}
	}

	return out
}

// bareissDet runs fraction-free elimination with row swaps on a copy of a.
// Each division by the previous pivot is exact over the integers.
// a must be square with n > 2.
func bareissDet[T Number](a *Matrix[T]) T {
	n := a.r
	w := a.Clone()

	var (
		prev  T = 1 // previous pivot
		pivot T
		neg   bool // odd number of row swaps
	)
	for k := 0; k < n-1; k++ {
		if w.data[k*n+k] == 0 {
			q := w.firstNonZeroBelow(k, k)
			if q < 0 {
				return 0 // column k is zero on and below the diagonal
			}
			w.swapRows(k, q)
			neg = !neg
		}
		pivot = w.data[k*n+k]
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				w.data[i*n+j] = (w.data[i*n+j]*pivot - w.data[i*n+k]*w.data[k*n+j]) / prev
			}
		}
		prev = pivot
	}

	det := w.data[n*n-1]
	if neg {
		det = -det
	}

	return det
}

// isUnsigned reports whether T is an unsigned integer kind.
func isUnsigned[T Number]() bool {
	var zero T
	return zero-1 > zero
}
