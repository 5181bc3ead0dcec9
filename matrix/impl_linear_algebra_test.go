// Package matrix_test contains unit tests for the arithmetic kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Add / Sub ----------

func TestAdd_Succeeds(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]int{{10, 20, 30}, {40, 50, 60}})

	s, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{11, 22, 33}, {44, 55, 66}}, s.ToRows())

	// operands are never mutated
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, a.ToRows())
}

func TestAdd_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustNew[int](t, 4, 4)
	b := MustNew[int](t, 5, 4)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddAssign(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFilled(5, 4, 3)
	require.NoError(t, err)
	sum, err := matrix.Add(m, m)
	require.NoError(t, err)

	require.NoError(t, m.AddAssign(sum))
	want, _ := matrix.NewFilled(5, 4, 9)
	require.True(t, m.Equal(want))

	// a failed AddAssign leaves the receiver untouched
	require.ErrorIs(t, m.AddAssign(MustNew[int](t, 4, 4)), matrix.ErrDimensionMismatch)
	require.True(t, m.Equal(want))
}

func TestSub(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{5, 5}, {2, 0.5}})
	b := MustFromRows(t, [][]float64{{1, 2}, {2, 0.25}})

	d, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 3}, {0, 0.25}}, d.ToRows())

	require.NoError(t, a.SubAssign(a))
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, a.ToRows())

	_, err = matrix.Sub(a, MustNew[float64](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- Scale ----------

func TestScale_BothOrders(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{2.5, 2.5, 1}, {2.5, 1, 2.5}})

	left, err := matrix.ScaleLeft(3.5, m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{8.75, 8.75, 3.5}, {8.75, 3.5, 8.75}}, left.ToRows())

	right, err := matrix.Scale(m, 2.5)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6.25, 6.25, 2.5}, {6.25, 2.5, 6.25}}, right.ToRows())

	_, err = matrix.Scale[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ScaleLeft[int](2, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScaleAssign(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]int{{1, -2}, {0, 4}})
	require.NoError(t, m.ScaleAssign(-3))
	require.Equal(t, [][]int{{-3, 6}, {0, -12}}, m.ToRows())
}

// ---------- Mul ----------

func TestMul_Succeeds(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]int{{2, 0}, {1, 2}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// [[1*2+2*1, 1*0+2*2], [3*2+4*1, 3*0+4*2]]
	require.Equal(t, [][]int{{4, 4}, {10, 8}}, p.ToRows())
}

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := MustFromRows(t, [][]int{{7}, {8}, {9}})         // 3×1

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 1, p.Cols())
	require.Equal(t, [][]int{{50}, {122}}, p.ToRows())
}

func TestMul_EmptyInner(t *testing.T) {
	t.Parallel()

	p, err := matrix.Mul(MustNew[int](t, 2, 0), MustNew[int](t, 0, 3))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}}, p.ToRows())
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewFilled(2, 3, 2.5)
	b, _ := matrix.NewFilled(5, 5, 5.0)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// a failed MulAssign leaves the receiver untouched
	require.ErrorIs(t, a.MulAssign(b), matrix.ErrDimensionMismatch)
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 3, a.Cols())
}

// TestMulAssign_SelfAliasing checks m *= m computes the full product first.
func TestMulAssign_SelfAliasing(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]int{{1, 1}, {1, 0}})
	require.NoError(t, m.MulAssign(m))
	require.Equal(t, [][]int{{2, 1}, {1, 1}}, m.ToRows())
	require.NoError(t, m.MulAssign(m))
	require.Equal(t, [][]int{{5, 3}, {3, 2}}, m.ToRows())
}

// TestMulAssign_WithTranspose reproduces m *= mᵀ, which changes the shape.
func TestMulAssign_WithTranspose(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{5, 5, 2}, {5, 2, 5}})
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)

	require.NoError(t, m.MulAssign(mt))
	require.Equal(t, [][]float64{{54, 45}, {45, 54}}, m.ToRows())
}

// ---------- Transpose ----------

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.True(t, back.Equal(m))

	empty, err := matrix.Transpose(MustNew[int](t, 0, 3))
	require.NoError(t, err)
	require.Equal(t, 3, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
