// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparse package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> dimension mismatch -> placement/out-of-range -> structural
// violations (unsorted / triangle) -> unsupported operations.

var (
	// ErrBadShape is returned when requested shape parameters are invalid
	// (negative rows/cols/nnz, or nnz>0 with a zero dimension).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. a vector length not matching rows/cols, or Gram
	// operands not sharing a column space.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates an index or destination block outside valid
	// bounds (triplet indices beyond the shape, block placement outside W).
	ErrOutOfRange = errors.New("sparse: index or block out of range")

	// ErrNonSquare signals that a square destination was required but the
	// given dense matrix wasn't.
	ErrNonSquare = errors.New("sparse: destination matrix is not square")

	// ErrUnsorted signals that the triplet ordering invariant is violated:
	// entries must be sorted by row then column, ascending, with no
	// duplicate (row,col) pairs. Detected only under deep checks.
	ErrUnsorted = errors.New("sparse: triplets not sorted or contain duplicates")

	// ErrNotUpperTriangular signals a symmetric-storage or placement
	// violation: a stored triplet with row>col, or a mapped destination
	// entry below the upper triangle. Detected only under deep checks.
	ErrNotUpperTriangular = errors.New("sparse: entry outside the upper triangle")

	// ErrUnsupported marks an operation that is intentionally never
	// implemented for triplet storage (e.g. CopyRowsFrom).
	ErrUnsupported = errors.New("sparse: operation not supported for triplet storage")
)
