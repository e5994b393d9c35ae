// SPDX-License-Identifier: MIT

// Package memspace: Manager — the named-space registry and copy broker.
//
// Purpose:
//   - Resolve a Space name to its Arena (the only lookup containers perform).
//   - Broker copies between buffers that may live in different spaces.
//
// Determinism & Policy:
//   - The host space is registered at construction and cannot be removed.
//   - Cross-space copies are synchronous full-buffer copies; partial or
//     asynchronous transfers are out of scope here.
package memspace

import "sync"

// Manager is a registry of arenas keyed by Space.
// It is safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	arenas map[Space]Arena
}

// defaultManager serves callers that do not wire their own registry.
// Initialized once; registering test spaces on it is allowed.
var (
	defaultManager *Manager
	defaultOnce    sync.Once
)

// NewManager returns a Manager with the host space pre-registered.
// Complexity: O(1).
func NewManager() *Manager {
	return &Manager{arenas: map[Space]Arena{Host: NewSliceArena()}}
}

// Default returns the process-wide Manager, creating it on first use.
// Containers fall back to it when no Manager option is supplied.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = NewManager()
	})

	return defaultManager
}

// Register binds an Arena to a Space, replacing any previous binding.
// Returns ErrNilArena when arena is nil.
func (m *Manager) Register(space Space, arena Arena) error {
	// Guard the nil arena early with the package sentinel.
	if arena == nil {
		return ErrNilArena
	}
	m.mu.Lock()
	m.arenas[space] = arena
	m.mu.Unlock()

	return nil
}

// Arena resolves a Space to its registered Arena.
// Returns ErrUnknownSpace when the space has no binding.
// Complexity: O(1).
func (m *Manager) Arena(space Space) (Arena, error) {
	m.mu.RLock()
	a, ok := m.arenas[space]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownSpace
	}

	return a, nil
}

// CopyFloats copies src into dst across (possibly distinct) spaces.
// Lengths must match exactly; returns ErrLengthMismatch otherwise.
// Complexity: O(n).
func (m *Manager) CopyFloats(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	copy(dst, src)

	return nil
}

// CopyInts copies src into dst across (possibly distinct) spaces.
// Lengths must match exactly; returns ErrLengthMismatch otherwise.
// Complexity: O(n).
func (m *Manager) CopyInts(dst, src []int) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	copy(dst, src)

	return nil
}
