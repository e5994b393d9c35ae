// SPDX-License-Identifier: MIT

// Package dense: functional configuration for operand placement.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no hidden global state beyond memspace.Default().
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package dense

import "github.com/katalvlaran/sparsela/memspace"

// DefaultSpace is the memory space used when none is configured.
// Host placement aliases the mirror onto the device buffer (no duplication).
const DefaultSpace = memspace.Host

// options carries resolved construction parameters.
type options struct {
	space memspace.Space    // placement of the device buffer
	mgr   *memspace.Manager // arena registry; nil ⇒ memspace.Default()
}

// Option mutates construction options.
type Option func(*options)

// WithSpace places the device buffer in the given memory space.
// The space must be registered on the effective Manager; construction fails
// with memspace.ErrUnknownSpace otherwise.
func WithSpace(s memspace.Space) Option {
	return func(o *options) { o.space = s }
}

// WithManager wires an explicit arena registry (default: memspace.Default()).
func WithManager(m *memspace.Manager) Option {
	return func(o *options) { o.mgr = m }
}

// gatherOptions applies fns over the documented defaults.
func gatherOptions(fns []Option) options {
	o := options{space: DefaultSpace}
	for _, fn := range fns {
		fn(&o)
	}
	if o.mgr == nil {
		o.mgr = memspace.Default() // single fallback point for the registry
	}

	return o
}
