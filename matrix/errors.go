// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with call-site context and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Detection
// sites wrap with fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> index/shape -> dimension mismatch -> square requirement.

var (
	// ErrInvalidDimensions indicates that a requested dimension is negative.
	// Zero rows or columns are legal.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set and all row operations return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Mul where a.Cols != b.Rows, or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a shape cannot be represented by the target,
	// e.g. exporting an empty matrix to gonum.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrBadTolerance rejects NaN or infinite tolerances passed to AllClose.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite")
)
