// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// All entry points return these sentinels (optionally wrapped with call-site
// context); tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package dense

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (matrix r<=0 or c<=0, vector n<0).
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrClosed indicates use of a container whose buffers were released.
	ErrClosed = errors.New("dense: container is closed")
)
