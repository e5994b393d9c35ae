// SPDX-License-Identifier: MIT

// Package sparse: fused D-weighted Gram kernels.
//
// These are the dominant hot path of KKT assembly: W += α·M·D⁻¹·Nᵀ computed
// entry-by-entry as weighted sparse dot-products of matrix rows. For each
// output entry (i,j) the two rows' sorted column lists are merge-joined:
//
//	col_i == col_j ⇒ accumulate v_i/D[col]·v_j, advance both cursors
//	col_i <  col_j ⇒ advance the i-cursor
//	col_i >  col_j ⇒ advance the j-cursor
//
// The tie-break must be preserved exactly — it assumes strictly sorted,
// duplicate-free column lists per row, which the row-start index also
// assumes. Rows are sliced in O(row_nnz) via the cached row-start index
// (built lazily on first use).
package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsela/parallel"
)

// weightedRowDot merge-joins triplet slices [ki,kiEnd) and [kj,kjEnd),
// accumulating vals[ki]/d[col]·vals[kj] wherever both rows carry the column.
func weightedRowDot(cols []int, vals []float64, d []float64, ki, kiEnd, kj, kjEnd int) float64 {
	acc := 0.0
	for ki < kiEnd && kj < kjEnd {
		switch {
		case cols[ki] == cols[kj]:
			acc += vals[ki] / d[cols[ki]] * vals[kj]
			ki++
			kj++
		case cols[ki] < cols[kj]:
			ki++
		default:
			kj++
		}
	}

	return acc
}

// AddMDinvMTransToDiagBlock accumulates the diagonal block
//
//	W[destStart:destStart+rows, destStart:destStart+rows] += alpha·A·diag(D)⁻¹·Aᵀ
//
// writing only the upper triangle (j>=i within the block). Each entry is the
// weighted sparse dot-product of rows i and j of A; the diagonal term is
// computed identically with i==j. Builds and caches the row-start index on
// first use.
//
// Contract: destStart>=0, destStart+Rows()<=W dims, D.Size()==Cols().
// Complexity: O(rows²) row-pairs, each O(row_nnz_i+row_nnz_j); rows run in
// parallel, each output row is written by exactly one worker (no atomics).
func (m *Triplet) AddMDinvMTransToDiagBlock(destStart int, alpha float64, d VectorData, w DenseBlock) error {
	if d.Size() != m.cols {
		return fmt.Errorf("Triplet.AddMDinvMTransToDiagBlock: %w", ErrDimensionMismatch)
	}
	if err := validateBlockPlacement(destStart, destStart, m.rows, m.rows, w); err != nil {
		return fmt.Errorf("Triplet.AddMDinvMTransToDiagBlock: %w", err)
	}

	rs, err := m.ensureRowStarts()
	if err != nil {
		return fmt.Errorf("Triplet.AddMDinvMTransToDiagBlock: %w", err)
	}

	wm, wn := w.LocalBuffer(), w.Cols()
	dm := d.LocalData()
	idx := rs.dev
	jCol, vals := m.colIdx, m.values
	numRows := m.rows

	m.forEachRow(func(i int) {
		// j==i: the diagonal term, same weighted dot of the row with itself.
		acc := 0.0
		for k := idx[i]; k < idx[i+1]; k++ {
			acc += vals[k] / dm[jCol[k]] * vals[k]
		}
		wm[(i+destStart)*wn+(i+destStart)] += alpha * acc

		// j>i: upper-triangle entries of the block.
		for j := i + 1; j < numRows; j++ {
			acc = weightedRowDot(jCol, vals, dm, idx[i], idx[i+1], idx[j], idx[j+1])
			wm[(i+destStart)*wn+(j+destStart)] += alpha * acc
		}
	})

	return nil
}

// AddMDinvNTransToBlock generalizes the diagonal-block kernel to two
// distinct matrices sharing a column space:
//
//	W[rowStart:rowStart+rows(M1), colStart:colStart+rows(M2)] += alpha·M1·diag(D)⁻¹·M2ᵀ
//
// The full rows(M1)×rows(M2) block is computed — every (i,j) pair
// independently via the same merge-join, no symmetry assumed. The caller is
// responsible for placing the block inside W's stored upper triangle; under
// deep checks a misplacement prints a warning to the diagnostics writer
// (tolerant diagnostic, not a correctness guard) and the kernel proceeds.
//
// Contract: Cols()==m2.Cols()==D.Size(); block must fit in W.
// Complexity: O(rows(M1)·rows(M2)) merge-joins.
func (m *Triplet) AddMDinvNTransToBlock(rowStart, colStart int, alpha float64, d VectorData, m2 *Triplet, w DenseBlock) error {
	if m2.cols != m.cols || d.Size() != m.cols {
		return fmt.Errorf("Triplet.AddMDinvNTransToBlock: %w", ErrDimensionMismatch)
	}
	if err := validateBlockPlacement(rowStart, colStart, m.rows, m2.rows, w); err != nil {
		return fmt.Errorf("Triplet.AddMDinvNTransToBlock: %w", err)
	}

	rs1, err := m.ensureRowStarts()
	if err != nil {
		return fmt.Errorf("Triplet.AddMDinvNTransToBlock: %w", err)
	}
	rs2, err := m2.ensureRowStarts()
	if err != nil {
		return fmt.Errorf("Triplet.AddMDinvNTransToBlock: %w", err)
	}

	if m.opts.deepChecks && m.rows > 0 && m2.rows > 0 && rowStart+m.rows-1 > colStart {
		// Bottom-left corner of the block dips below the diagonal of W.
		fmt.Fprintf(m.opts.diag,
			"[warning] lower triangular element updated in AddMDinvNTransToBlock (rowStart=%d colStart=%d)\n",
			rowStart, colStart)
	}

	wm, wn := w.LocalBuffer(), w.Cols()
	dm := d.LocalData()
	idx1, idx2 := rs1.dev, rs2.dev
	col1, val1 := m.colIdx, m.values
	col2, val2 := m2.colIdx, m2.values
	rows2 := m2.rows

	m.forEachRow(func(i int) {
		for j := 0; j < rows2; j++ {
			acc := 0.0
			ki, kj := idx1[i], idx2[j]
			for ki < idx1[i+1] && kj < idx2[j+1] {
				switch {
				case col1[ki] == col2[kj]:
					acc += val1[ki] / dm[col1[ki]] * val2[kj]
					ki++
					kj++
				case col1[ki] < col2[kj]:
					ki++
				default:
					kj++
				}
			}
			wm[(i+rowStart)*wn+(j+colStart)] += alpha * acc
		}
	})

	return nil
}

// forEachRow runs fn over [0,rows) in parallel. Split out so both Gram
// kernels share one execution-policy touch point.
func (m *Triplet) forEachRow(fn func(i int)) {
	parallel.For(m.rows, fn)
}
