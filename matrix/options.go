// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the sparse variants.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Bounds policy is the only switch. Lenient (default) reads return 0 for
//     any coordinate outside the declared shape, which matches lazy row
//     growth: a read before the first write is always well-defined. Strict
//     mode rejects such coordinates with ErrOutOfRange on both At and Set.
//   - Options are copied into every matrix produced by CreateMatrix, so a
//     generic algorithm never silently changes the policy of its input.
package matrix

// DefaultStrictBounds toggles validation of coordinates against the declared shape.
const DefaultStrictBounds = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	strictBounds bool // DefaultStrictBounds
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{strictBounds: DefaultStrictBounds}
}

// WithStrictBounds rejects every At/Set outside [0,Rows)×[0,Cols).
func WithStrictBounds() Option {
	return func(o *Options) { o.strictBounds = true }
}

// WithLenientBounds restores the default lenient policy.
// Useful when a caller needs to override an option slice it does not own.
func WithLenientBounds() Option {
	return func(o *Options) { o.strictBounds = false }
}

// gatherOptions applies opts on top of the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// asOptions turns a resolved Options back into a replayable Option slice.
func (o Options) asOptions() []Option {
	if o.strictBounds {
		return []Option{WithStrictBounds()}
	}

	return nil
}
