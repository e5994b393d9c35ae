// SPDX-License-Identifier: MIT
// Package sparse — consumed-operand contracts and segregated capabilities.
//
// Purpose:
//   - Name the exact capabilities kernels need from dense operands, instead
//     of depending on concrete types or open-ended downcasts.
//   - Segregate the operation surface so that storage variants only carry
//     the operations they actually support; a dense-product method simply
//     does not exist on triplet storage, making the unsupported combination
//     unrepresentable rather than runtime-fatal.
//
// Determinism & Policy:
//   - All capability methods are O(1) accessors; kernels own the loops.
//   - dense.Vector and dense.Matrix satisfy VectorData and DenseBlock.

package sparse

// VectorData is the vector capability consumed by multiplication kernels:
// a length and a device-side data slice. CopyToDev/CopyFromDev discipline
// is the caller's responsibility before/after raw cross-space access.
type VectorData interface {
	// Size returns the vector length.
	Size() int

	// LocalData returns the device-side buffer of length Size().
	LocalData() []float64
}

// DenseBlock is the dense-destination capability consumed by block-insertion
// and Gram kernels: shape plus the flat row-major device buffer.
type DenseBlock interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// LocalBuffer returns the flat row-major device buffer (len Rows*Cols).
	LocalBuffer() []float64
}

// VectorMultiplier is the product-against-vectors capability of triplet
// storage: y ← βy + αAx and the transpose counterpart.
type VectorMultiplier interface {
	TimesVec(beta float64, y VectorData, alpha float64, x VectorData) error
	TransTimesVec(beta float64, y VectorData, alpha float64, x VectorData) error
}

// SymBlockAdder inserts α-scaled entries into a block of a dense symmetric
// matrix that stores only its upper triangle.
type SymBlockAdder interface {
	AddToSymDenseUpperTriangle(rowStart, colStart int, alpha float64, w DenseBlock) error
	TransAddToSymDenseUpperTriangle(rowStart, colStart int, alpha float64, w DenseBlock) error
}

// GramUpdater is the fused-kernel capability: D-weighted Gram-like products
// accumulated into the upper triangle of a dense destination.
type GramUpdater interface {
	AddMDinvMTransToDiagBlock(destStart int, alpha float64, d VectorData, w DenseBlock) error
	AddMDinvNTransToBlock(rowStart, colStart int, alpha float64, d VectorData, m2 *Triplet, w DenseBlock) error
}

// Compile-time capability wiring for both storage variants.
var (
	_ VectorMultiplier = (*Triplet)(nil)
	_ SymBlockAdder    = (*Triplet)(nil)
	_ GramUpdater      = (*Triplet)(nil)

	_ VectorMultiplier = (*SymTriplet)(nil)
	_ SymBlockAdder    = (*SymTriplet)(nil)
)
