// SPDX-License-Identifier: MIT

// Package sparse: Triplet — the general M×N sparse matrix in triplet format.
//
// Representation:
//   - Three parallel arrays of length nnz (row index, col index, value),
//     allocated once at construction (capacity == population, no growth).
//   - Device-space arrays plus host mirrors; the mirrors alias the device
//     arrays when the memory space is the host space.
//
// Invariants (validated only under deep checks):
//   - Triplets sorted by row ascending, then column ascending, no duplicate
//     (row,col) pairs.
//   - rows==0 or cols==0 forces nnz==0.
package sparse

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/sparsela/memspace"
	"github.com/katalvlaran/sparsela/parallel"
)

// Triplet is a general rows×cols sparse matrix stored as parallel
// (row, col, value) arrays, potentially mirrored across a device and the
// host memory space. It exclusively owns its buffers and the lazily built
// row-start index.
type Triplet struct {
	rows, cols, nnz int

	space memspace.Space
	mgr   *memspace.Manager
	opts  options

	rowIdx, colIdx []int     // device-side index arrays
	values         []float64 // device-side value array

	hRow, hCol []int     // host mirrors; alias device arrays on host space
	hVal       []float64 // host mirror of values

	starts *rowStarts // lazily built row-start index, owned
	closed bool
}

// New creates a rows×cols triplet matrix with capacity for nnz entries.
// Stage 1 (Validate): non-negative shape; zero dimension forces nnz to 0.
// Stage 2 (Prepare): allocate device arrays, then host mirrors if the
// memory space is not the host space (else mirrors alias).
// Stage 3 (Finalize): return the matrix or the underlying sentinel.
// Complexity: O(nnz) allocation/zeroing.
func New(rows, cols, nnz int, opts ...Option) (*Triplet, error) {
	if rows < 0 || cols < 0 || nnz < 0 {
		return nil, fmt.Errorf("sparse.New(%d,%d,%d): %w", rows, cols, nnz, ErrBadShape)
	}
	// A degenerate dimension cannot carry entries.
	if rows == 0 || cols == 0 {
		nnz = 0
	}
	o := gatherOptions(opts)

	devArena, err := o.mgr.Arena(o.space)
	if err != nil {
		return nil, fmt.Errorf("sparse.New: %w", err)
	}

	m := &Triplet{rows: rows, cols: cols, nnz: nnz, space: o.space, mgr: o.mgr, opts: o}

	if m.rowIdx, err = devArena.Ints(nnz); err != nil {
		return nil, fmt.Errorf("sparse.New: %w", err)
	}
	if m.colIdx, err = devArena.Ints(nnz); err != nil {
		devArena.ReleaseInts(m.rowIdx)
		return nil, fmt.Errorf("sparse.New: %w", err)
	}
	if m.values, err = devArena.Floats(nnz); err != nil {
		devArena.ReleaseInts(m.colIdx)
		devArena.ReleaseInts(m.rowIdx)
		return nil, fmt.Errorf("sparse.New: %w", err)
	}

	// Host mirrors: independent allocations only when spaces differ.
	m.hRow, m.hCol, m.hVal = m.rowIdx, m.colIdx, m.values
	if o.space != memspace.Host {
		// Drop the aliases first so a partial failure never releases a
		// device array through the host arena.
		m.hRow, m.hCol, m.hVal = nil, nil, nil
		hostArena, herr := o.mgr.Arena(memspace.Host)
		if herr == nil {
			if m.hRow, herr = hostArena.Ints(nnz); herr == nil {
				if m.hCol, herr = hostArena.Ints(nnz); herr == nil {
					m.hVal, herr = hostArena.Floats(nnz)
				}
			}
		}
		if herr != nil {
			m.releaseBuffers()
			return nil, fmt.Errorf("sparse.New: %w", herr)
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Triplet) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Triplet) Cols() int { return m.cols }

// NNZ returns the number of stored entries. Complexity: O(1).
func (m *Triplet) NNZ() int { return m.nnz }

// Space returns the matrix's memory space. Complexity: O(1).
func (m *Triplet) Space() memspace.Space { return m.space }

// RowIndexes exposes the device-side row-index array (no copy).
func (m *Triplet) RowIndexes() []int { return m.rowIdx }

// ColIndexes exposes the device-side col-index array (no copy).
func (m *Triplet) ColIndexes() []int { return m.colIdx }

// Values exposes the device-side value array (no copy).
func (m *Triplet) Values() []float64 { return m.values }

// HostRowIndexes exposes the host mirror of the row-index array.
func (m *Triplet) HostRowIndexes() []int { return m.hRow }

// HostColIndexes exposes the host mirror of the col-index array.
func (m *Triplet) HostColIndexes() []int { return m.hCol }

// HostValues exposes the host mirror of the value array.
func (m *Triplet) HostValues() []float64 { return m.hVal }

// Fill populates the matrix from host-side triplet slices (the assembler
// contract: the owner populates after construction) and pushes the result
// to the device.
// Stage 1 (Validate): lengths equal nnz; indices within the shape; under
// deep checks the (row,col) ordering invariant must hold.
// Stage 2 (Execute): copy into host mirrors.
// Stage 3 (Finalize): CopyToDev.
// Complexity: O(nnz).
func (m *Triplet) Fill(rows, cols []int, vals []float64) error {
	if len(rows) != m.nnz || len(cols) != m.nnz || len(vals) != m.nnz {
		return fmt.Errorf("Triplet.Fill: got %d/%d/%d entries, want %d: %w",
			len(rows), len(cols), len(vals), m.nnz, ErrDimensionMismatch)
	}
	for k := 0; k < m.nnz; k++ {
		if rows[k] < 0 || rows[k] >= m.rows || cols[k] < 0 || cols[k] >= m.cols {
			return fmt.Errorf("Triplet.Fill: entry %d at (%d,%d): %w", k, rows[k], cols[k], ErrOutOfRange)
		}
	}
	if m.opts.deepChecks {
		if err := checkOrdered(rows, cols); err != nil {
			return fmt.Errorf("Triplet.Fill: %w", err)
		}
	}

	copy(m.hRow, rows)
	copy(m.hCol, cols)
	copy(m.hVal, vals)
	m.CopyToDev()

	return nil
}

// SetToZero fills the value array with zeros. Complexity: O(nnz) work.
func (m *Triplet) SetToZero() { m.SetToConstant(0) }

// SetToConstant fills the value array with c via a data-parallel fill.
// No side effects beyond the device value buffer.
// Complexity: O(nnz) work.
func (m *Triplet) SetToConstant(c float64) {
	dd := m.values
	parallel.For(m.nnz, func(i int) { dd[i] = c })
}

// MaxAbsValue returns the maximum |value| over all stored entries via a
// parallel reduction; 0 for an empty matrix.
// Complexity: O(nnz) work.
func (m *Triplet) MaxAbsValue() float64 {
	vals := m.values

	return parallel.ReduceMax(m.nnz, 0.0, func(i int) float64 {
		return math.Abs(vals[i])
	})
}

// IsFinite reports whether every stored value is finite (no NaN, no ±Inf),
// via a parallel non-finite count. Under deep checks it first validates the
// sorted-triplet invariant and surfaces ErrUnsorted on violation.
// Complexity: O(nnz) work.
func (m *Triplet) IsFinite() (bool, error) {
	if m.opts.deepChecks {
		if err := m.CheckOrdered(); err != nil {
			return false, fmt.Errorf("Triplet.IsFinite: %w", err)
		}
	}
	vals := m.values
	bad := parallel.Count(m.nnz, func(i int) bool {
		v := vals[i]
		return math.IsNaN(v) || math.IsInf(v, 0)
	})

	return bad == 0, nil
}

// AllocClone allocates a same-shape, same-nnz, uninitialized matrix in the
// same memory space (values/indices zeroed, not copied).
func (m *Triplet) AllocClone() (*Triplet, error) {
	return New(m.rows, m.cols, m.nnz, m.cloneOptions()...)
}

// NewCopy allocates a clone and deep-copies all index/value buffers, device
// and host mirrors both. Under deep checks the source ordering invariant is
// validated first.
// Complexity: O(nnz).
func (m *Triplet) NewCopy() (*Triplet, error) {
	if m.opts.deepChecks {
		if err := m.CheckOrdered(); err != nil {
			return nil, fmt.Errorf("Triplet.NewCopy: %w", err)
		}
	}
	out, err := m.AllocClone()
	if err != nil {
		return nil, fmt.Errorf("Triplet.NewCopy: %w", err)
	}
	m.copyBuffersInto(out.bufferSet())

	return out, nil
}

// cloneOptions rebuilds the option list capturing this matrix's policy.
func (m *Triplet) cloneOptions() []Option {
	opts := []Option{WithSpace(m.space), WithManager(m.mgr), WithDiagnostics(m.opts.diag)}
	if m.opts.deepChecks {
		opts = append(opts, WithDeepChecks())
	}

	return opts
}

// buffers groups the seven (or four, aliased) owned slices for copies.
type buffers struct {
	rowIdx, colIdx []int
	values         []float64
	hRow, hCol     []int
	hVal           []float64
}

func (m *Triplet) bufferSet() buffers {
	return buffers{m.rowIdx, m.colIdx, m.values, m.hRow, m.hCol, m.hVal}
}

// copyBuffersInto deep-copies every buffer of m into dst (device + mirror).
func (m *Triplet) copyBuffersInto(dst buffers) {
	_ = m.mgr.CopyInts(dst.rowIdx, m.rowIdx)
	_ = m.mgr.CopyInts(dst.colIdx, m.colIdx)
	_ = m.mgr.CopyFloats(dst.values, m.values)
	_ = m.mgr.CopyInts(dst.hRow, m.hRow)
	_ = m.mgr.CopyInts(dst.hCol, m.hCol)
	_ = m.mgr.CopyFloats(dst.hVal, m.hVal)
}

// CopyRowsFrom is permanently unsupported for triplet storage: row-subset
// extraction has no defined semantics over unordered triplet arrays.
// Always returns ErrUnsupported.
func (m *Triplet) CopyRowsFrom(src *Triplet, rowIdxs []int) error {
	return fmt.Errorf("Triplet.CopyRowsFrom: %w", ErrUnsupported)
}

// CheckOrdered validates the sorted-triplet invariant on the host mirrors:
// rows ascending; columns strictly ascending within a row (which also rules
// out duplicate (row,col) pairs). It forces CopyFromDev first so the check
// always reflects device state.
// Complexity: O(nnz).
func (m *Triplet) CheckOrdered() error {
	m.CopyFromDev()

	return checkOrdered(m.hRow, m.hCol)
}

// checkOrdered is the shared host-side ordering scan.
func checkOrdered(rows, cols []int) error {
	for i := 1; i < len(rows); i++ {
		if rows[i] < rows[i-1] {
			return fmt.Errorf("entry %d: row %d after row %d: %w", i, rows[i], rows[i-1], ErrUnsorted)
		}
		if rows[i] == rows[i-1] && cols[i] <= cols[i-1] {
			return fmt.Errorf("entry %d: col %d after col %d in row %d: %w",
				i, cols[i], cols[i-1], rows[i], ErrUnsorted)
		}
	}

	return nil
}

// CopyToDev pushes the host mirrors into the device arrays.
// No-op when the memory space is the host space (arrays alias).
func (m *Triplet) CopyToDev() {
	if m.space == memspace.Host {
		return
	}
	_ = m.mgr.CopyInts(m.rowIdx, m.hRow)
	_ = m.mgr.CopyInts(m.colIdx, m.hCol)
	_ = m.mgr.CopyFloats(m.values, m.hVal)
}

// CopyFromDev pulls the device arrays into the host mirrors.
// No-op when the memory space is the host space (arrays alias).
func (m *Triplet) CopyFromDev() {
	if m.space == memspace.Host {
		return
	}
	_ = m.mgr.CopyInts(m.hRow, m.rowIdx)
	_ = m.mgr.CopyInts(m.hCol, m.colIdx)
	_ = m.mgr.CopyFloats(m.hVal, m.values)
}

// Print emits a 1-indexed textual dump of the triplets: a size/nnz header
// (or the given label) followed by the row-index, col-index and value lists.
// It always forces CopyFromDev first — diagnostics reflect host-visible
// state. maxElems<0 prints everything; rank>0 suppresses output (matrices
// are rank-local objects, only rank 0 or "all ranks" print).
// This is a debugging aid, not a stable serialization format.
func (m *Triplet) Print(w io.Writer, label string, maxElems, rank int) {
	m.CopyFromDev()

	if rank > 0 {
		return
	}
	if maxElems < 0 || maxElems > m.nnz {
		maxElems = m.nnz
	}

	if label == "" {
		fmt.Fprintf(w, "matrix of size %d %d and nonzeros %d, printing %d elems\n",
			m.rows, m.cols, m.nnz, maxElems)
	} else {
		fmt.Fprintf(w, "%s ", label)
	}

	// 1-indexed lists, matlab-style literals.
	fmt.Fprint(w, "rows=[")
	for it := 0; it < maxElems; it++ {
		fmt.Fprintf(w, "%d; ", m.hRow[it]+1)
	}
	fmt.Fprint(w, "];\n")

	fmt.Fprint(w, "cols=[")
	for it := 0; it < maxElems; it++ {
		fmt.Fprintf(w, "%d; ", m.hCol[it]+1)
	}
	fmt.Fprint(w, "];\n")

	fmt.Fprint(w, "vals=[")
	for it := 0; it < maxElems; it++ {
		fmt.Fprintf(w, "%22.16e; ", m.hVal[it])
	}
	fmt.Fprint(w, "];\n")
}

// Close releases the row-start index (if built) and then every owned buffer
// in reverse order of acquisition, respecting the alias-vs-independent
// distinction so no buffer is released twice. Repeat calls are no-ops.
func (m *Triplet) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	if m.starts != nil {
		m.starts.release(m.mgr, m.space)
		m.starts = nil
	}
	m.releaseBuffers()

	return nil
}

// releaseBuffers returns mirrors first, then device arrays.
func (m *Triplet) releaseBuffers() {
	if m.space != memspace.Host {
		if hostArena, err := m.mgr.Arena(memspace.Host); err == nil {
			if m.hVal != nil {
				hostArena.ReleaseFloats(m.hVal)
			}
			if m.hCol != nil {
				hostArena.ReleaseInts(m.hCol)
			}
			if m.hRow != nil {
				hostArena.ReleaseInts(m.hRow)
			}
		}
	}
	if devArena, err := m.mgr.Arena(m.space); err == nil {
		if m.values != nil {
			devArena.ReleaseFloats(m.values)
		}
		if m.colIdx != nil {
			devArena.ReleaseInts(m.colIdx)
		}
		if m.rowIdx != nil {
			devArena.ReleaseInts(m.rowIdx)
		}
	}
	m.rowIdx, m.colIdx, m.values = nil, nil, nil
	m.hRow, m.hCol, m.hVal = nil, nil, nil
}
