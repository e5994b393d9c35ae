// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for triplet construction and the
// numeric-safety policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state beyond memspace.Default().
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Deep checks trade speed for validation of the sorted-triplet and
//     upper-triangle invariants; they are OFF by default, mirroring the
//     release-build behavior of interior-point hot loops. Tests and
//     assembly-debugging sessions should switch them on.
//   - The diagnostics writer only ever receives deep-check warnings (the
//     tolerant lower-triangle placement diagnostic of the two-matrix Gram
//     kernel); it is never written to in normal operation.
package sparse

import (
	"io"
	"os"

	"github.com/katalvlaran/sparsela/memspace"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultSpace is the memory space used when none is configured.
	DefaultSpace = memspace.Host

	// DefaultDeepChecks controls whether structural invariants (sorted
	// triplets, upper-triangle placement) are validated on the operations
	// that assume them. false ⇒ skip for speed; violations then silently
	// corrupt results.
	DefaultDeepChecks = false
)

// options carries resolved construction parameters.
type options struct {
	space      memspace.Space    // placement of device buffers
	mgr        *memspace.Manager // arena registry; nil ⇒ memspace.Default()
	deepChecks bool              // opt-in structural validation
	diag       io.Writer         // deep-check warning sink; nil ⇒ os.Stderr
}

// Option mutates construction options.
type Option func(*options)

// WithSpace places the matrix buffers in the given memory space. A non-host
// space implies independent host mirrors kept in sync only by explicit
// CopyToDev/CopyFromDev calls.
func WithSpace(s memspace.Space) Option {
	return func(o *options) { o.space = s }
}

// WithManager wires an explicit arena registry (default: memspace.Default()).
func WithManager(m *memspace.Manager) Option {
	return func(o *options) { o.mgr = m }
}

// WithDeepChecks enables structural invariant validation (sorted triplets,
// duplicate detection, upper-triangle placement) on the operations that
// assume those invariants. Costs an extra host-side scan per checked call.
func WithDeepChecks() Option {
	return func(o *options) { o.deepChecks = true }
}

// WithDiagnostics redirects deep-check warnings (default: os.Stderr).
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) { o.diag = w }
}

// gatherOptions applies fns over the documented defaults.
func gatherOptions(fns []Option) options {
	o := options{space: DefaultSpace, deepChecks: DefaultDeepChecks}
	for _, fn := range fns {
		fn(&o)
	}
	if o.mgr == nil {
		o.mgr = memspace.Default()
	}
	if o.diag == nil {
		o.diag = os.Stderr
	}

	return o
}
