// SPDX-License-Identifier: MIT

// Package matrix: element constraint and domain types.
// This file contains ONLY type-level declarations. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Number is the set of element types a Matrix may hold: every integer kind
// and both float kinds, including named types built on them.
// Complex kinds are excluded: Rank converts elements to float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DeterminantMethod selects the algorithm used by DeterminantWith.
type DeterminantMethod int

const (
	// Cofactor expands recursively along the first row. O(n!).
	Cofactor DeterminantMethod = iota

	// Elimination uses fraction-free (Bareiss) elimination. O(n³).
	// Exact for signed integers; float results may differ at rounding level.
	Elimination
)

// String returns the method name.
func (d DeterminantMethod) String() string {
	switch d {
	case Cofactor:
		return "cofactor"
	case Elimination:
		return "elimination"
	default:
		return "unknown"
	}
}
