// Package sparse_test: symmetric triplet matrix tests — implicit mirroring
// of the stored upper triangle, diagonal extraction, storage deep checks.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsela/sparse"
	"github.com/stretchr/testify/require"
)

// mustSym builds an n×n symmetric matrix from upper-triangle triplets,
// failing the test on any constructor or Fill error.
func mustSym(t *testing.T, n int, ri, ci []int, vals []float64, opts ...sparse.Option) *sparse.SymTriplet {
	t.Helper()
	s, err := sparse.NewSym(n, len(vals), opts...)
	require.NoError(t, err)
	require.NoError(t, s.Fill(ri, ci, vals))

	return s
}

// TestSymTimesVecMirrors checks the implicit lower triangle: stored
// [[1,2],[·,3]] acts as the full [[1,2],[2,3]].
func TestSymTimesVecMirrors(t *testing.T) {
	s := mustSym(t, 2, []int{0, 0, 1}, []int{0, 1, 1}, []float64{1, 2, 3})
	defer s.Close()

	x := mustVector(t, []float64{1, 1})
	defer x.Close()
	y := mustVector(t, []float64{0, 0})
	defer y.Close()

	require.NoError(t, s.TimesVec(0, y, 1, x))
	require.InDelta(t, 3.0, y.LocalData()[0], 1e-15) // 1·1 + 2·1
	require.InDelta(t, 5.0, y.LocalData()[1], 1e-15) // 2·1 + 3·1
}

// TestSymDiagonalNotDoubled ensures diagonal triplets contribute once.
func TestSymDiagonalNotDoubled(t *testing.T) {
	s := mustSym(t, 2, []int{0, 1}, []int{0, 1}, []float64{4, 7})
	defer s.Close()

	x := mustVector(t, []float64{1, 1})
	defer x.Close()
	y := mustVector(t, []float64{0, 0})
	defer y.Close()

	require.NoError(t, s.TimesVec(0, y, 1, x))
	require.Equal(t, []float64{4, 7}, y.LocalData())
}

// TestSymTransTimesVecEqualsTimesVec: M == Mᵀ, so both products agree.
func TestSymTransTimesVecEqualsTimesVec(t *testing.T) {
	s := mustSym(t, 3,
		[]int{0, 0, 1, 2}, []int{0, 2, 1, 2}, []float64{1, 2, 3, 4})
	defer s.Close()

	x := mustVector(t, []float64{1, -2, 0.5})
	defer x.Close()
	y1 := mustVector(t, []float64{0, 0, 0})
	defer y1.Close()
	y2 := mustVector(t, []float64{0, 0, 0})
	defer y2.Close()

	require.NoError(t, s.TimesVec(0, y1, 2, x))
	require.NoError(t, s.TransTimesVec(0, y2, 2, x))
	for i := range y1.LocalData() {
		require.InDelta(t, y1.LocalData()[i], y2.LocalData()[i], 1e-14)
	}
}

// TestSymFillDeepChecksStorage: deep checks reject triplets below the
// diagonal; without them Fill trusts the caller.
func TestSymFillDeepChecksStorage(t *testing.T) {
	dc, err := sparse.NewSym(2, 1, sparse.WithDeepChecks())
	require.NoError(t, err)
	defer dc.Close()
	require.ErrorIs(t, dc.Fill([]int{1}, []int{0}, []float64{1}), sparse.ErrNotUpperTriangular)

	plain, err := sparse.NewSym(2, 1)
	require.NoError(t, err)
	defer plain.Close()
	require.NoError(t, plain.Fill([]int{1}, []int{0}, []float64{1}))
}

// TestSymAddToDenseUpperTriangle places the stored triangle into a larger
// symmetric destination at an offset.
func TestSymAddToDenseUpperTriangle(t *testing.T) {
	s := mustSym(t, 2, []int{0, 0, 1}, []int{0, 1, 1}, []float64{1, 2, 3})
	defer s.Close()

	w := mustMatrix(t, 4, 4)
	defer w.Close()
	w.SetToConstant(1)

	require.NoError(t, s.AddToSymDenseUpperTriangle(1, 1, 2, w))

	at := func(i, j int) float64 {
		v, err := w.At(i, j)
		require.NoError(t, err)
		return v
	}
	require.InDelta(t, 3.0, at(1, 1), 1e-15) // 1 + 2·1
	require.InDelta(t, 5.0, at(1, 2), 1e-15) // 1 + 2·2
	require.InDelta(t, 7.0, at(2, 2), 1e-15) // 1 + 2·3
	require.Equal(t, 1.0, at(2, 1))          // mirror left untouched
	require.Equal(t, 1.0, at(0, 0))          // outside the block
}

// TestSymAddSubDiagonalTo covers the full diagonal, a shifted window, the
// n<0 default, and the contract errors.
func TestSymAddSubDiagonalTo(t *testing.T) {
	// diagonals 1,2,3 plus an off-diagonal entry the extraction must skip
	s := mustSym(t, 3,
		[]int{0, 0, 1, 2}, []int{0, 2, 1, 2}, []float64{1, 9, 2, 3})
	defer s.Close()

	t.Run("full diagonal", func(t *testing.T) {
		dst := mustVector(t, []float64{10, 10, 10})
		defer dst.Close()
		require.NoError(t, s.AddSubDiagonalTo(0, 2, dst, 0, 3))
		require.Equal(t, []float64{12, 14, 16}, dst.LocalData())
	})

	t.Run("shifted window", func(t *testing.T) {
		dst := mustVector(t, []float64{0, 0, 0})
		defer dst.Close()
		// window [1,3), written at dst[0+row]
		require.NoError(t, s.AddSubDiagonalTo(1, 1, dst, 0, 2))
		require.Equal(t, []float64{0, 2, 3}, dst.LocalData())
	})

	t.Run("default count clamps to both windows", func(t *testing.T) {
		dst := mustVector(t, []float64{0, 0, 0, 0, 0})
		defer dst.Close()
		require.NoError(t, s.AddSubDiagonalTo(1, 1, dst, 1, -1))
		require.Equal(t, []float64{0, 0, 2, 3, 0}, dst.LocalData())
	})

	t.Run("contract violations", func(t *testing.T) {
		dst := mustVector(t, []float64{0, 0})
		defer dst.Close()
		require.ErrorIs(t, s.AddSubDiagonalTo(0, 1, dst, -1, 1), sparse.ErrOutOfRange)
		require.ErrorIs(t, s.AddSubDiagonalTo(2, 1, dst, 0, 2), sparse.ErrOutOfRange)        // window exceeds matrix
		require.ErrorIs(t, s.AddSubDiagonalTo(0, 1, dst, 0, 3), sparse.ErrDimensionMismatch) // dst too small
	})
}

// TestSymClonesKeepType: AllocClone/NewCopy return symmetric matrices.
func TestSymClonesKeepType(t *testing.T) {
	s := mustSym(t, 2, []int{0, 1}, []int{1, 1}, []float64{2, 3})
	defer s.Close()

	shape, err := s.AllocClone()
	require.NoError(t, err)
	defer shape.Close()
	require.Equal(t, 2, shape.Rows())
	require.Equal(t, 2, shape.NNZ())

	cp, err := s.NewCopy()
	require.NoError(t, err)
	defer cp.Close()
	require.Equal(t, s.HostValues(), cp.HostValues())

	// a copy multiplies like the original
	x := mustVector(t, []float64{1, 1})
	defer x.Close()
	y := mustVector(t, []float64{0, 0})
	defer y.Close()
	require.NoError(t, cp.TimesVec(0, y, 1, x))
	require.Equal(t, []float64{2, 5}, y.LocalData())
}
