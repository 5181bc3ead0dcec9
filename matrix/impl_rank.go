// SPDX-License-Identifier: MIT

// Package matrix - rank by Gaussian elimination.
//
// Purpose:
//   - Compute the rank of a Matrix[T] on a working copy; the receiver is never touched.
//
// Determinism:
//   - Fixed pivot order p = 0,1,…; fixed row order for elimination and pivot search.
//
// Numeric policy:
//   - The elimination factor is computed in float64 for every T and the
//     subtracted term is converted back to T before subtraction. For integer
//     element types this conversion truncates toward zero, and the resulting
//     rank is the one defined by that truncating elimination (it can be lower
//     than the exact rank of the integer matrix).

package matrix

// Rank returns the rank of m computed by Gaussian elimination.
// MAIN DESCRIPTION:
//   - limit starts at min(Rows, Cols) and is decremented for each column found
//     to be dependent; the final limit is the rank.
//
// Implementation (pivot index p, starting at 0, while p < limit):
//   - Stage 1: pivot w(p,p) != 0 → for every row q != p,
//     f = w(q,p)/w(p,p) in float64 and w(q,i) -= T(f*w(p,i)) for i in [0,limit); p++.
//   - Stage 2: pivot zero, some row q > p has w(q,p) != 0 → swap rows p,q; retry p.
//   - Stage 3: pivot zero, column empty at/below p → limit--, copy column
//     limit into column p for every row; retry p.
//
// Behavior highlights:
//   - Works on a clone; m is unchanged.
//   - Matrices with a zero dimension (and a nil m) have rank 0.
//
// Complexity:
//   - Time O(r * min(r,c)²) plus O(r*c) for the working copy.
func (m *Matrix[T]) Rank() int {
	if m == nil {
		return 0
	}

	w := m.Clone()
	rows, cols := w.r, w.c
	limit := min(rows, cols)

	var (
		p, q, i int     // pivot, row and column iterators
		pivot   T       // current pivot value
		f       float64 // elimination factor
	)
	for p = 0; p < limit; {
		pivot = w.data[p*cols+p]
		if pivot != 0 {
			for q = 0; q < rows; q++ {
				if q == p {
					continue
				}
				f = float64(w.data[q*cols+p]) / float64(pivot)
				for i = 0; i < limit; i++ {
					w.data[q*cols+i] -= T(f * float64(w.data[p*cols+i]))
				}
			}
			p++
			continue
		}

		if q = w.firstNonZeroBelow(p, p); q >= 0 {
			w.swapRows(p, q)
			continue // retry the same pivot
		}

		// column p is dependent: retire the last candidate column into its place
		limit--
		for q = 0; q < rows; q++ {
			w.data[q*cols+p] = w.data[q*cols+limit]
		}
	}

	return limit
}

// firstNonZeroBelow returns the first row q > row with a non-zero entry in
// column col, or -1 when there is none.
func (m *Matrix[T]) firstNonZeroBelow(row, col int) int {
	for q := row + 1; q < m.r; q++ {
		if m.data[q*m.c+col] != 0 {
			return q
		}
	}

	return -1
}
