// Package sparsela is the sparse linear-algebra core of an interior-point
// NLP solver — triplet matrices, their symmetric specialization and the
// fused kernels that assemble KKT systems at every solver iteration.
//
// 🚀 What is sparsela?
//
//	A pure-Go library that brings together:
//		• Memory spaces: named arenas ("HOST" plus accelerator spaces) with
//		  explicit host↔device mirror synchronization
//		• Dense operands: flat row-major matrices & vectors with mirrors
//		• Sparse triplet matrices: scatter-add products, block insertion
//		  into dense symmetric matrices, finiteness/norm reductions
//		• Symmetric triplets: upper-triangle storage with implicit mirroring
//		• Fused Gram kernels: W += α·M·D⁻¹·Nᵀ via row merge-joins over a
//		  lazily built row-start index
//
// ✨ Why choose sparsela?
//
//   - Deterministic contracts – sentinel errors, errors.Is-friendly, no panics
//   - Explicit coherence – host/device sync is always visible in the API
//   - Pure Go – no cgo, no hidden deps
//   - Hot-path aware – data-parallel loops with atomic accumulation where
//     scatter targets collide
//
// Everything is organized under four subpackages:
//
//	memspace/ — named memory-space arenas + cross-space copies
//	parallel/ — bounded parallel-for / reductions over index ranges
//	dense/    — dense Matrix and Vector operands (mirror-aware)
//	sparse/   — Triplet, SymTriplet, row-start index and fused kernels
//
// Dive into the per-package docs for contracts, complexity notes and the
// deep-checks mode used to validate triplet ordering invariants.
//
//	go get github.com/katalvlaran/sparsela
package sparsela
