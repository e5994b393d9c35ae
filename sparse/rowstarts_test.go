// Package sparse_test: row-start index construction and caching tests.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsela/sparse"
	"github.com/stretchr/testify/require"
)

// TestRowOffsetsScenario pins the canonical scenario: triplets
// (0,0),(0,1),(1,2),(2,0) on a 3-row matrix ⇒ offsets [0,2,3,4].
func TestRowOffsetsScenario(t *testing.T) {
	m := mustTriplet(t, 3, 3, []int{0, 0, 1, 2}, []int{0, 1, 2, 0}, []float64{1, 2, 3, 4})
	defer m.Close()

	off, err := m.RowOffsets()
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 4}, off)
}

// TestRowOffsetsEmptyRows verifies gaps produce repeated offsets and the
// terminal offset always equals nnz.
func TestRowOffsetsEmptyRows(t *testing.T) {
	// rows 1 and 3 are empty
	m := mustTriplet(t, 5, 4, []int{0, 2, 2, 4}, []int{1, 0, 3, 2}, []float64{1, 2, 3, 4})
	defer m.Close()

	off, err := m.RowOffsets()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 3, 3, 4}, off)
	require.Equal(t, m.NNZ(), off[m.Rows()])

	// offsets must be non-decreasing
	for i := 1; i < len(off); i++ {
		require.GreaterOrEqual(t, off[i], off[i-1])
	}
}

// TestRowOffsetsEmptyMatrix covers the degenerate shapes.
func TestRowOffsetsEmptyMatrix(t *testing.T) {
	m, err := sparse.New(3, 3, 0)
	require.NoError(t, err)
	defer m.Close()

	off, err := m.RowOffsets()
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0}, off)
}

// TestRowOffsetsUnsorted ensures a build over out-of-order rows fails
// instead of silently producing a broken index.
func TestRowOffsetsUnsorted(t *testing.T) {
	m := mustTriplet(t, 3, 3, []int{2, 0}, []int{0, 0}, []float64{1, 2})
	defer m.Close()

	_, err := m.RowOffsets()
	require.ErrorIs(t, err, sparse.ErrUnsorted)

	// the deep-checked build also rejects column disorder inside a row,
	// which the plain build cannot see (it only walks row boundaries)
	dc := mustTriplet(t, 2, 3, []int{0, 0}, []int{1, 2}, []float64{1, 2},
		sparse.WithDeepChecks())
	defer dc.Close()
	dc.HostColIndexes()[0], dc.HostColIndexes()[1] = 2, 1 // corrupt in place
	dc.InvalidateRowStarts()
	_, err = dc.RowOffsets()
	require.ErrorIs(t, err, sparse.ErrUnsorted)
}

// TestRowOffsetsCachedAndInvalidated verifies memoization and the explicit
// invalidation hook.
func TestRowOffsetsCachedAndInvalidated(t *testing.T) {
	m := mustTriplet(t, 2, 2, []int{0, 1}, []int{0, 1}, []float64{1, 2})
	defer m.Close()

	off1, err := m.RowOffsets()
	require.NoError(t, err)
	off2, err := m.RowOffsets()
	require.NoError(t, err)
	require.Equal(t, &off1[0], &off2[0]) // cached: same backing array

	// change the sparsity structure, then invalidate to rebuild
	require.NoError(t, m.Fill([]int{0, 0}, []int{0, 1}, []float64{1, 2}))
	m.InvalidateRowStarts()

	off3, err := m.RowOffsets()
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 2}, off3) // reflects the new structure
}
