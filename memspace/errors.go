// SPDX-License-Identifier: MIT
// Package memspace: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// memspace package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package memspace

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "memspace: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrUnknownSpace is returned when a Space has no registered Arena.
	ErrUnknownSpace = errors.New("memspace: unknown memory space")

	// ErrNegativeLen indicates a negative element count passed to an allocator.
	ErrNegativeLen = errors.New("memspace: negative allocation length")

	// ErrArenaExhausted indicates the arena's byte budget would be exceeded.
	ErrArenaExhausted = errors.New("memspace: arena budget exhausted")

	// ErrLengthMismatch indicates that a cross-space copy was attempted
	// between buffers of different lengths.
	ErrLengthMismatch = errors.New("memspace: buffer length mismatch")

	// ErrNilArena indicates an attempt to register a nil Arena.
	ErrNilArena = errors.New("memspace: nil arena")
)
