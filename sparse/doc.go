// Package sparse implements the triplet-format sparse matrices at the heart
// of the KKT assembly path: a general M×N Triplet, its symmetric
// upper-triangle specialization SymTriplet, and the lazily built row-start
// index backing the fused Gram kernels.
//
// The sparse package provides:
//
//   - Triplet: parallel (row, col, value) arrays with fixed nnz capacity,
//     optional device placement with host mirrors, and explicit
//     CopyToDev/CopyFromDev synchronization.
//   - Scatter-add products TimesVec/TransTimesVec with atomic accumulation
//     where iterations collide on an output slot.
//   - Block insertion into the upper triangle of a dense symmetric matrix.
//   - Fused kernels W += α·M·D⁻¹·Nᵀ computed as per-row-pair merge-joins
//     over sorted column lists, sliced through the cached row-start index.
//   - SymTriplet: rows==cols, row<=col storage, implicit lower-triangle
//     mirroring during products, sub-diagonal extraction.
//
// Triplets are expected sorted by (row, col) ascending with no duplicate
// pairs; the opt-in deep-checks mode (WithDeepChecks) validates that
// invariant and the upper-triangle placement contracts. Without deep checks,
// violating a contract silently corrupts results — the deliberate
// debug/release trade-off of this core.
//
// Operations not meaningful for triplet storage (dense products, diagonal
// updates, row-subset extraction) are not part of the Triplet surface;
// capability interfaces in api.go keep unsupported combinations
// unrepresentable instead of runtime-fatal. The lone exception is
// CopyRowsFrom, kept as an explicit ErrUnsupported stub for callers holding
// the shared matrix surface.
package sparse
