// Package memspace provides named memory-space arenas and a registry
// (Manager) used by the dense and sparse containers to allocate their
// device buffers and host mirrors.
//
// The memspace package provides:
//
//   - Space identifiers ("HOST" plus caller-registered accelerator spaces).
//   - The Arena allocation contract: typed slice allocation with byte
//     accounting and explicit release.
//   - Manager, a registry of arenas keyed by Space, with cross-space copy
//     helpers used for host↔device synchronization.
//
// All arenas bundled here are host-backed; a "DEVICE" space registered for
// testing behaves as an independent allocation pool so that mirror and
// synchronization logic is exercised without an accelerator present.
//
// See the examples in the sparse package for usage patterns.
package memspace
