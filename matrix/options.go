// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for determinant selection and
// textual rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Invalid parameters are programmer errors and panic at option construction.
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDeterminantMethod is the algorithm used when none is requested.
	DefaultDeterminantMethod = Cofactor

	// DefaultSeparator separates adjacent columns when rendering.
	DefaultSeparator = "\t"

	// DefaultElementFormat is the fmt verb used for every rendered element.
	DefaultElementFormat = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDeterminantMethodInvalid = "matrix: WithDeterminantMethod: unknown method"
	panicSeparatorInvalid         = "matrix: WithSeparator: separator must be non-empty and contain no newline"
	panicElementFormatInvalid     = "matrix: WithElementFormat: format must contain exactly one verb"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	detMethod DeterminantMethod // DefaultDeterminantMethod

	separator     string // DefaultSeparator
	elementFormat string // DefaultElementFormat
}

// WithDeterminantMethod selects the determinant algorithm for DeterminantWith.
// Panics on values other than Cofactor or Elimination.
func WithDeterminantMethod(method DeterminantMethod) Option {
	if method != Cofactor && method != Elimination {
		panic(panicDeterminantMethodInvalid)
	}

	return func(o *Options) { o.detMethod = method }
}

// WithSeparator sets the column separator used by Render.
// Implementation:
//   - Stage 1: reject "" and any separator containing '\n' (rows are newline-delimited).
//   - Stage 2: return a setter writing the separator.
//
// Errors:
//   - Panics with a stable message when sep is invalid.
func WithSeparator(sep string) Option {
	if sep == "" || strings.ContainsRune(sep, '\n') {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.separator = sep }
}

// WithElementFormat sets the fmt format applied to each element by Render,
// e.g. "%.2f" or "%6d". The format must hold exactly one verb.
func WithElementFormat(format string) Option {
	if countVerbs(format) != 1 {
		panic(panicElementFormatInvalid)
	}

	return func(o *Options) { o.elementFormat = format }
}

// countVerbs counts fmt verbs in format, ignoring literal "%%".
func countVerbs(format string) int {
	var n int
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++ // literal percent
			continue
		}
		n++
	}

	return n
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		detMethod:     DefaultDeterminantMethod,
		separator:     DefaultSeparator,
		elementFormat: DefaultElementFormat,
	}
}

// gatherOptions applies opts over the defaults in order. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
