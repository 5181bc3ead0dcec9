// Package densemat is a small, dependency-light playground for dense matrix
// algebra over any Go numeric type.
//
// What is inside?
//
//	matrix/ — the generic Matrix[T] value type:
//		• Construction: New, NewFilled, NewIdentity, NewFromRows, Clone, Assign
//		• Safe indexing: At / Set return ErrOutOfRange instead of panicking
//		• Arithmetic: Add, Sub, Scale, ScaleLeft, Mul, Transpose (+ *Assign forms)
//		• Element-wise: Hadamard, Apply, AllClose
//		• Row operations: RowAdd, RowScale, RowSwap (chainable via RowOps)
//		• Rank by Gaussian elimination, Determinant by cofactor expansion
//		• Tab-separated rendering and gonum/mat interop
//
//	examples/ — a runnable walk through the API (go run ./examples)
//
// Why densemat?
//
//   - Generic – one implementation for int, int64, uint8, float32, float64…
//   - Predictable – fixed loop orders, fresh storage for every result
//   - Fail-fast – every misuse surfaces as a sentinel error usable with errors.Is
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	det, _ := m.Determinant() // -2
//	fmt.Print(m)              // "1\t2\n3\t4\n"
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
