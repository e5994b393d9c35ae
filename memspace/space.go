// SPDX-License-Identifier: MIT

// Package memspace: memory-space identifiers and the Arena allocation
// contract consumed by dense/sparse containers.
//
// Purpose:
//   - Model the allocate/deallocate/copy contract keyed by a named space.
//   - Keep byte accounting explicit so leaks surface in tests (InUse==0).
//   - Stay allocator-agnostic: containers never assume a concrete Arena.
package memspace

import "sync"

// Space names a memory space. The host space is always available; callers
// may register additional spaces (e.g. "DEVICE") on a Manager.
type Space string

// Host is the canonical host memory space, always registered on a Manager.
const Host Space = "HOST"

// bytes per element for the two buffer kinds handed out by arenas.
const (
	floatBytes = 8
	intBytes   = 8
)

// Arena is the allocation contract for a single memory space.
//
// Allocations are typed slices rather than raw bytes: Go containers address
// buffers through slices, and an accelerator-backed Arena is expected to
// hand out host-addressable staging slices or pinned memory behind them.
// Every allocation must eventually be paired with the matching Release call;
// InUse reports the outstanding byte balance.
type Arena interface {
	// Floats allocates a zeroed float64 buffer of length n.
	// Returns ErrNegativeLen for n<0 and ErrArenaExhausted over budget.
	Floats(n int) ([]float64, error)

	// Ints allocates a zeroed int buffer of length n.
	// Same error contract as Floats.
	Ints(n int) ([]int, error)

	// ReleaseFloats returns a buffer obtained from Floats.
	ReleaseFloats(buf []float64)

	// ReleaseInts returns a buffer obtained from Ints.
	ReleaseInts(buf []int)

	// InUse reports outstanding allocated bytes. Zero after balanced release.
	InUse() int64
}

// SliceArena is a host-backed Arena with mutex-guarded byte accounting and
// an optional byte budget (0 means unlimited).
// It is safe for concurrent use.
type SliceArena struct {
	mu    sync.Mutex // guards inUse
	inUse int64      // outstanding bytes
	limit int64      // 0 ⇒ unlimited
}

// NewSliceArena returns an unlimited host-backed arena.
// Complexity: O(1).
func NewSliceArena() *SliceArena {
	return &SliceArena{}
}

// NewBoundedArena returns a host-backed arena refusing allocations that
// would push outstanding bytes above limit. A non-positive limit means
// unlimited (same as NewSliceArena).
func NewBoundedArena(limit int64) *SliceArena {
	if limit < 0 {
		limit = 0 // normalize: negative budgets make no sense
	}

	return &SliceArena{limit: limit}
}

// reserve accounts for nbytes, enforcing the optional budget.
func (a *SliceArena) reserve(nbytes int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	// Enforce the budget before committing the reservation.
	if a.limit > 0 && a.inUse+nbytes > a.limit {
		return ErrArenaExhausted
	}
	a.inUse += nbytes

	return nil
}

// release gives nbytes back, clamping at zero to survive double-release bugs.
func (a *SliceArena) release(nbytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inUse -= nbytes
	if a.inUse < 0 {
		a.inUse = 0
	}
}

// Floats allocates a zeroed float64 slice of length n.
// Complexity: O(n) zeroing by the runtime.
func (a *SliceArena) Floats(n int) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeLen
	}
	if err := a.reserve(int64(n) * floatBytes); err != nil {
		return nil, err
	}

	return make([]float64, n), nil
}

// Ints allocates a zeroed int slice of length n.
// Complexity: O(n) zeroing by the runtime.
func (a *SliceArena) Ints(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLen
	}
	if err := a.reserve(int64(n) * intBytes); err != nil {
		return nil, err
	}

	return make([]int, n), nil
}

// ReleaseFloats returns buf's bytes to the arena budget.
func (a *SliceArena) ReleaseFloats(buf []float64) {
	a.release(int64(len(buf)) * floatBytes)
}

// ReleaseInts returns buf's bytes to the arena budget.
func (a *SliceArena) ReleaseInts(buf []int) {
	a.release(int64(len(buf)) * intBytes)
}

// InUse reports outstanding allocated bytes.
// Complexity: O(1).
func (a *SliceArena) InUse() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.inUse
}
