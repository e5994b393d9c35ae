// SPDX-License-Identifier: MIT

// Package sparse: the row-start index — a derived structure giving O(1)
// row-slice lookup over row-major-sorted triplets.
//
// offsets has numRows+1 entries; entries for row i occupy the triplet index
// range [offsets[i], offsets[i+1]) and offsets[numRows]==nnz. The index is
// built lazily on the first operation needing row-random access (the
// weighted Gram kernels) and cached for the matrix's lifetime.
//
// The build is inherently sequential (prefix-scan dependency) and runs
// single-threaded on the host mirrors, then the result is copied to the
// matrix's memory space. Building concurrently from multiple goroutines is
// unsafe: force the first build (or any Gram call) before sharing the
// matrix for parallel read-only use.
package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsela/memspace"
)

// rowStarts caches the per-row offset table in host and device spaces.
type rowStarts struct {
	numRows int
	host    []int // canonical copy, built sequentially
	dev     []int // matrix-space copy; aliases host on the host space
}

// release returns the index buffers to their arenas, alias-aware.
func (rs *rowStarts) release(mgr *memspace.Manager, space memspace.Space) {
	if space != memspace.Host {
		if devArena, err := mgr.Arena(space); err == nil {
			devArena.ReleaseInts(rs.dev)
		}
	}
	if hostArena, err := mgr.Arena(memspace.Host); err == nil {
		hostArena.ReleaseInts(rs.host)
	}
	rs.host, rs.dev = nil, nil
}

// buildRowStarts constructs the offset table with a single-threaded
// sequential scan over the host-mirrored, row-sorted triplets: offsets[0]=0
// and, for each row i, a cursor advances while the current triplet's row
// equals i-1. Under deep checks an unsorted pair fails with ErrUnsorted.
//
// The host mirrors must reflect the intended structure (Fill keeps them in
// sync; after raw device-side index mutation call CopyFromDev first).
// Complexity: O(rows + nnz), sequential by necessity.
func (m *Triplet) buildRowStarts() (*rowStarts, error) {
	hostArena, err := m.mgr.Arena(memspace.Host)
	if err != nil {
		return nil, err
	}
	host, err := hostArena.Ints(m.rows + 1)
	if err != nil {
		return nil, err
	}

	rs := &rowStarts{numRows: m.rows, host: host, dev: host}

	itTriplet := 0
	host[0] = 0
	for i := 1; i <= m.rows; i++ {
		host[i] = host[i-1]
		for itTriplet < m.nnz && m.hRow[itTriplet] == i-1 {
			if m.opts.deepChecks && itTriplet >= 1 {
				if m.hRow[itTriplet-1] > m.hRow[itTriplet] ||
					(m.hRow[itTriplet-1] == m.hRow[itTriplet] && m.hCol[itTriplet-1] >= m.hCol[itTriplet]) {
					hostArena.ReleaseInts(host)
					return nil, ErrUnsorted
				}
			}
			host[i]++
			itTriplet++
		}
	}
	// Every triplet must have been consumed; a leftover means a row index
	// out of [0,rows) or a sort violation.
	if itTriplet != m.nnz {
		hostArena.ReleaseInts(host)
		return nil, ErrUnsorted
	}

	// Copy to the matrix's memory space (no-op aliasing on host).
	if m.space != memspace.Host {
		devArena, derr := m.mgr.Arena(m.space)
		if derr != nil {
			hostArena.ReleaseInts(host)
			return nil, derr
		}
		if rs.dev, derr = devArena.Ints(m.rows + 1); derr != nil {
			hostArena.ReleaseInts(host)
			return nil, derr
		}
		_ = m.mgr.CopyInts(rs.dev, rs.host)
	}

	return rs, nil
}

// ensureRowStarts returns the cached index, building and memoizing it on
// first use. The cache is treated as mutable state independent of the
// matrix's external read-only contract (logically-const lazy cache).
func (m *Triplet) ensureRowStarts() (*rowStarts, error) {
	if m.starts != nil {
		return m.starts, nil
	}
	rs, err := m.buildRowStarts()
	if err != nil {
		return nil, err
	}
	m.starts = rs

	return rs, nil
}

// RowOffsets returns (building if needed) the row-start offset table:
// numRows+1 non-decreasing offsets with RowOffsets()[Rows()]==NNZ().
// The returned slice is the live host copy — callers must not mutate it.
func (m *Triplet) RowOffsets() ([]int, error) {
	rs, err := m.ensureRowStarts()
	if err != nil {
		return nil, fmt.Errorf("Triplet.RowOffsets: %w", err)
	}

	return rs.host, nil
}

// InvalidateRowStarts drops the cached index so the next row-random-access
// operation rebuilds it. Call after changing the sparsity structure of the
// index arrays; value-only updates never require invalidation.
func (m *Triplet) InvalidateRowStarts() {
	if m.starts != nil {
		m.starts.release(m.mgr, m.space)
		m.starts = nil
	}
}
