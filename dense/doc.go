// Package dense provides the dense operands consumed by the sparse kernels:
// a flat row-major Matrix and a Vector, both carrying an optional device
// buffer with a host mirror.
//
// The dense package provides:
//
//   - Vector with Size/LocalData/HostData accessors and explicit
//     CopyToDev/CopyFromDev synchronization.
//   - Matrix (row-major, flat backing slice) used as the destination of
//     sparse block-insertion and fused Gram updates.
//
// When the memory space is the host space, the host mirror aliases the
// device buffer and synchronization calls are no-ops. There is no automatic
// coherence tracking: callers must synchronize around any raw access that
// crosses memory spaces.
package dense
