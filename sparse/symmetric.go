// SPDX-License-Identifier: MIT

// Package sparse: SymTriplet — symmetric sparse matrix in triplet format.
// Only the UPPER triangle is stored (every triplet satisfies row<=col); all
// operations implicitly symmetrize, so off-diagonal entries contribute both
// their explicit upper position and the mirrored lower one.
package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsela/parallel"
)

// SymTriplet is an n×n symmetric sparse matrix storing only row<=col
// triplets. It inherits the general Triplet contracts with rows==cols
// enforced at construction.
type SymTriplet struct {
	Triplet
}

// NewSym creates an n×n symmetric triplet matrix with capacity for nnz
// upper-triangle entries. Same allocation behavior as New.
func NewSym(n, nnz int, opts ...Option) (*SymTriplet, error) {
	base, err := New(n, n, nnz, opts...)
	if err != nil {
		return nil, fmt.Errorf("sparse.NewSym: %w", err)
	}

	return &SymTriplet{Triplet: *base}, nil
}

// Fill populates the matrix from host-side triplet slices. On top of the
// general Fill validation, deep checks reject any stored triplet below the
// diagonal (row>col) with ErrNotUpperTriangular.
func (s *SymTriplet) Fill(rows, cols []int, vals []float64) error {
	if s.opts.deepChecks {
		if err := checkUpperTriangleStorage(rows, cols); err != nil {
			return fmt.Errorf("SymTriplet.Fill: %w", err)
		}
	}

	return s.Triplet.Fill(rows, cols, vals)
}

// TimesVec computes y ← beta·y + alpha·A·x for the full symmetric A: after
// the scale pass, every triplet (r,c,v) contributes y[r] += alpha·x[c]·v
// and, when r!=c, the implicit lower-triangle mirror y[c] += alpha·x[r]·v —
// both accumulated atomically alongside each other.
// Contract: x.Size()==y.Size()==Rows(). Complexity: O(rows + nnz) work.
func (s *SymTriplet) TimesVec(beta float64, y VectorData, alpha float64, x VectorData) error {
	if err := validateVecLens(x, s.cols, y, s.rows); err != nil {
		return fmt.Errorf("SymTriplet.TimesVec: %w", err)
	}
	yd, xd := y.LocalData(), x.LocalData()

	parallel.For(s.rows, func(i int) { yd[i] *= beta })

	irw, jcl, vls := s.rowIdx, s.colIdx, s.values
	parallel.For(s.nnz, func(k int) {
		r, c := irw[k], jcl[k]
		parallel.AddFloat64(&yd[r], alpha*xd[c]*vls[k])
		if r != c {
			// mirrored lower-triangle contribution
			parallel.AddFloat64(&yd[c], alpha*xd[r]*vls[k])
		}
	})

	return nil
}

// TransTimesVec is TimesVec: a symmetric matrix equals its transpose.
func (s *SymTriplet) TransTimesVec(beta float64, y VectorData, alpha float64, x VectorData) error {
	return s.TimesVec(beta, y, alpha, x)
}

// AddToSymDenseUpperTriangle behaves as the general case but, under deep
// checks, additionally asserts every stored triplet satisfies row<=col.
func (s *SymTriplet) AddToSymDenseUpperTriangle(rowStart, colStart int, alpha float64, w DenseBlock) error {
	if err := s.checkStorage("SymTriplet.AddToSymDenseUpperTriangle"); err != nil {
		return err
	}

	return s.Triplet.AddToSymDenseUpperTriangle(rowStart, colStart, alpha, w)
}

// TransAddToSymDenseUpperTriangle behaves as the general transpose variant
// but, under deep checks, additionally asserts row<=col storage.
func (s *SymTriplet) TransAddToSymDenseUpperTriangle(rowStart, colStart int, alpha float64, w DenseBlock) error {
	if err := s.checkStorage("SymTriplet.TransAddToSymDenseUpperTriangle"); err != nil {
		return err
	}

	return s.Triplet.TransAddToSymDenseUpperTriangle(rowStart, colStart, alpha, w)
}

// checkStorage runs the deep-check upper-triangle storage scan.
func (s *SymTriplet) checkStorage(tag string) error {
	if !s.opts.deepChecks {
		return nil
	}
	s.CopyFromDev()
	if err := checkUpperTriangleStorage(s.hRow, s.hCol); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	return nil
}

// AddSubDiagonalTo extracts the sub-diagonal window
// [diagSrcStart, diagSrcStart+n) from this matrix and adds alpha-scaled
// entries into dst: for every stored diagonal triplet (r,r,v) in the
// window, dst[dstStart+r] += alpha·v. n<0 means "as many as fit in the
// destination" (dst.Size()-dstStart).
//
// Contract: the window must lie within the matrix and the shifted window
// within dst. Complexity: O(nnz) scan.
func (s *SymTriplet) AddSubDiagonalTo(diagSrcStart int, alpha float64, dst VectorData, dstStart, n int) error {
	if dstStart < 0 || dstStart > dst.Size() {
		return fmt.Errorf("SymTriplet.AddSubDiagonalTo: %w", ErrOutOfRange)
	}
	if n < 0 {
		// Destination slots are dst[dstStart+row] with row>=diagSrcStart,
		// so this is the largest window that still fits.
		n = dst.Size() - dstStart - diagSrcStart
		if max := s.rows - diagSrcStart; n > max {
			n = max
		}
		if n < 0 {
			n = 0
		}
	}
	if diagSrcStart < 0 || diagSrcStart+n > s.rows {
		return fmt.Errorf("SymTriplet.AddSubDiagonalTo: %w", ErrOutOfRange)
	}
	if dstStart+diagSrcStart+n > dst.Size() {
		return fmt.Errorf("SymTriplet.AddSubDiagonalTo: %w", ErrDimensionMismatch)
	}

	v := dst.LocalData()
	irw, jcl, vls := s.rowIdx, s.colIdx, s.values
	lo, hi := diagSrcStart, diagSrcStart+n
	// Diagonal (row,row) triplets are unique, so writes are disjoint.
	parallel.For(s.nnz, func(k int) {
		row := irw[k]
		if row == jcl[k] && row >= lo && row < hi {
			v[dstStart+row] += alpha * vls[k]
		}
	})

	return nil
}

// AllocClone allocates a same-shape, same-nnz, uninitialized symmetric
// matrix in the same memory space.
func (s *SymTriplet) AllocClone() (*SymTriplet, error) {
	base, err := New(s.rows, s.cols, s.nnz, s.cloneOptions()...)
	if err != nil {
		return nil, fmt.Errorf("SymTriplet.AllocClone: %w", err)
	}

	return &SymTriplet{Triplet: *base}, nil
}

// NewCopy deep-copies all index/value buffers into a fresh SymTriplet.
func (s *SymTriplet) NewCopy() (*SymTriplet, error) {
	out, err := s.AllocClone()
	if err != nil {
		return nil, fmt.Errorf("SymTriplet.NewCopy: %w", err)
	}
	s.copyBuffersInto(out.bufferSet())

	return out, nil
}
