// SPDX-License-Identifier: MIT

// Package matrix - textual rendering.
//
// Format (defaults):
//   - one line per row, each terminated by '\n';
//   - elements separated by a single tab, no leading or trailing separator;
//   - elements printed with "%v".
//
// A 0×N matrix renders as "", an N×0 matrix as N empty lines.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// String implements fmt.Stringer using the default rendering options.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder
	_ = render(&sb, m, defaultOptions()) // strings.Builder never fails

	return sb.String()
}

// Render writes m to w, configured by WithSeparator and WithElementFormat.
//
// Errors:
//   - ErrNilMatrix, or the first write error from w.
func Render[T Number](w io.Writer, m *Matrix[T], opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Render", err)
	}

	return render(w, m, gatherOptions(opts...))
}

// render walks rows then columns and writes each row in a single call.
func render[T Number](w io.Writer, m *Matrix[T], o Options) error {
	var line strings.Builder
	for i := 0; i < m.r; i++ {
		line.Reset()
		for j := 0; j < m.c; j++ {
			if j > 0 {
				line.WriteString(o.separator)
			}
			fmt.Fprintf(&line, o.elementFormat, m.data[i*m.c+j])
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return fmt.Errorf("Render: row %d: %w", i, err)
		}
	}

	return nil
}
