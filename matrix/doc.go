// Package matrix provides Matrix[T], a generic row-major dense matrix.
//
// The matrix package provides:
//
//   - Matrix[T] over any Number element type, with runtime dimensions fixed
//     at construction and exclusively owned storage.
//   - Bounds-checked accessors (At/Set) and shape-checked arithmetic
//     (Add, Sub, Scale, Mul, Transpose) that always allocate fresh results.
//   - Element-wise kernels (Hadamard, Apply) and tolerance comparison (AllClose).
//   - In-place elementary row operations with a chainable RowChain facade.
//   - Rank via Gaussian elimination and Determinant via cofactor expansion
//     (an elimination-based determinant is available through options).
//   - Tab-separated rendering and conversion to/from gonum.org/v1/gonum/mat.
//
// Matrices are intended for small to medium sizes: multiplication is O(n³)
// and cofactor determinants are O(n!).
//
// See the examples in this package for usage patterns.
package matrix
