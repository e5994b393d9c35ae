// SPDX-License-Identifier: MIT

// Package sparse: multiplication and block-insertion kernels for Triplet.
//
// Execution model (see package parallel): every kernel is a bounded
// data-parallel loop over an index range that completes before the call
// returns. Scatter-add destinations shared between iterations (two triplets
// targeting the same output row) are accumulated atomically; iteration
// order across triplets is unspecified, so floating-point summation order
// is non-deterministic across runs with different parallelism.
package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsela/parallel"
)

// TimesVec computes y ← beta·y + alpha·A·x.
//
// Contract: x.Size()==Cols(), y.Size()==Rows(); ErrDimensionMismatch
// otherwise. Two phases: scale y over [0,rows), then a parallel scatter-add
// over all nnz triplets with atomic accumulation into y[row[k]].
// Complexity: O(rows + nnz) work.
func (m *Triplet) TimesVec(beta float64, y VectorData, alpha float64, x VectorData) error {
	if err := validateVecLens(x, m.cols, y, m.rows); err != nil {
		return fmt.Errorf("Triplet.TimesVec: %w", err)
	}
	m.timesVecRaw(beta, y.LocalData(), alpha, x.LocalData())

	return nil
}

// timesVecRaw is the raw-slice core of TimesVec (operands already sized).
func (m *Triplet) timesVecRaw(beta float64, y []float64, alpha float64, x []float64) {
	// Phase (a): y = beta*y, data-parallel over rows.
	parallel.For(m.rows, func(i int) { y[i] *= beta })

	irw, jcl, vls := m.rowIdx, m.colIdx, m.values
	// Phase (b): scatter-add. Atomic: y[irw[k]] can be the target of many
	// concurrent iterations when triplets share a row.
	parallel.For(m.nnz, func(k int) {
		parallel.AddFloat64(&y[irw[k]], alpha*x[jcl[k]]*vls[k])
	})
}

// TransTimesVec computes y ← beta·y + alpha·Aᵀ·x, symmetric to TimesVec
// with row/col roles swapped: x.Size()==Rows(), y.Size()==Cols().
// Complexity: O(cols + nnz) work.
func (m *Triplet) TransTimesVec(beta float64, y VectorData, alpha float64, x VectorData) error {
	if err := validateVecLens(x, m.rows, y, m.cols); err != nil {
		return fmt.Errorf("Triplet.TransTimesVec: %w", err)
	}
	yd, xd := y.LocalData(), x.LocalData()

	parallel.For(m.cols, func(i int) { yd[i] *= beta })

	irw, jcl, vls := m.rowIdx, m.colIdx, m.values
	// Atomic: y[jcl[k]] can be targeted by many iterations (shared column).
	parallel.For(m.nnz, func(k int) {
		parallel.AddFloat64(&yd[jcl[k]], alpha*xd[irw[k]]*vls[k])
	})

	return nil
}

// AddToSymDenseUpperTriangle adds alpha·v to W[r+rowStart][c+colStart] for
// every stored triplet (r,c,v). W stores only its upper triangle; the
// destination block must lie within W's bounds, and — validated only under
// deep checks — every mapped (i,j) must satisfy i<=j.
// Stored (row,col) pairs are unique, so the writes are disjoint and need no
// atomics. Complexity: O(nnz) work.
func (m *Triplet) AddToSymDenseUpperTriangle(rowStart, colStart int, alpha float64, w DenseBlock) error {
	if err := validateSquare(w); err != nil {
		return fmt.Errorf("Triplet.AddToSymDenseUpperTriangle: %w", err)
	}
	if err := validateBlockPlacement(rowStart, colStart, m.rows, m.cols, w); err != nil {
		return fmt.Errorf("Triplet.AddToSymDenseUpperTriangle: %w", err)
	}
	if m.opts.deepChecks {
		m.CopyFromDev()
		if err := checkUpperTrianglePlacement(m.hRow, m.hCol, rowStart, colStart); err != nil {
			return fmt.Errorf("Triplet.AddToSymDenseUpperTriangle: %w", err)
		}
	}

	wm, wn := w.LocalBuffer(), w.Cols()
	irw, jcl, vls := m.rowIdx, m.colIdx, m.values
	parallel.For(m.nnz, func(k int) {
		i := irw[k] + rowStart
		j := jcl[k] + colStart
		wm[i*wn+j] += alpha * vls[k]
	})

	return nil
}

// TransAddToSymDenseUpperTriangle is the transpose variant: the column index
// maps to W's row and the row index to W's column, i.e. alpha·v is added to
// W[c+rowStart][r+colStart]. Same bound and (deep-checked) triangularity
// preconditions. Complexity: O(nnz) work.
func (m *Triplet) TransAddToSymDenseUpperTriangle(rowStart, colStart int, alpha float64, w DenseBlock) error {
	if err := validateSquare(w); err != nil {
		return fmt.Errorf("Triplet.TransAddToSymDenseUpperTriangle: %w", err)
	}
	// Transposed block shape: cols rows tall, rows cols wide.
	if err := validateBlockPlacement(rowStart, colStart, m.cols, m.rows, w); err != nil {
		return fmt.Errorf("Triplet.TransAddToSymDenseUpperTriangle: %w", err)
	}
	if m.opts.deepChecks {
		m.CopyFromDev()
		// Roles swap: the col array supplies W-row offsets.
		if err := checkUpperTrianglePlacement(m.hCol, m.hRow, rowStart, colStart); err != nil {
			return fmt.Errorf("Triplet.TransAddToSymDenseUpperTriangle: %w", err)
		}
	}

	wm, wn := w.LocalBuffer(), w.Cols()
	irw, jcl, vls := m.rowIdx, m.colIdx, m.values
	parallel.For(m.nnz, func(k int) {
		i := jcl[k] + rowStart
		j := irw[k] + colStart
		wm[i*wn+j] += alpha * vls[k]
	})

	return nil
}
