// Package matrix_test contains rendering tests.
package matrix_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestString_TabSeparated(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	autogold.Expect("1\t2\t3\n4\t5\t6\n").Equal(t, m.String())
}

func TestString_Floats(t *testing.T) {
	m := MustFromRows(t, [][]float64{{2.5, 2.5, 1}, {2.5, 1, 2.5}})
	autogold.Expect("2.5\t2.5\t1\n2.5\t1\t2.5\n").Equal(t, m.String())
}

func TestString_ZeroSized(t *testing.T) {
	require.Equal(t, "", MustNew[int](t, 0, 4).String())
	require.Equal(t, "\n\n", MustNew[int](t, 2, 0).String())

	var m *matrix.Matrix[int]
	require.Equal(t, "<nil>", m.String())
}

func TestRender_Options(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0.25}, {-3, 10}})

	var sb strings.Builder
	require.NoError(t, matrix.Render(&sb, m, matrix.WithSeparator(" | "), matrix.WithElementFormat("%.2f")))
	autogold.Expect("1.00 | 0.25\n-3.00 | 10.00\n").Equal(t, sb.String())

	require.ErrorIs(t, matrix.Render[int](&sb, nil), matrix.ErrNilMatrix)
}

// failWriter rejects every write.
type failWriter struct{}

var errWrite = errors.New("write refused")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRender_WriteError(t *testing.T) {
	err := matrix.Render(failWriter{}, MustNew[int](t, 1, 1))
	require.ErrorIs(t, err, errWrite)
}
