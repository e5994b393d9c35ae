// SPDX-License-Identifier: MIT

// Package dense: Matrix — a flat row-major float64 matrix with an optional
// device buffer and host mirror. It is the destination of sparse
// block-insertion and fused Gram updates (only its upper triangle is
// meaningful for those symmetric destinations).
package dense

import (
	"fmt"

	"github.com/katalvlaran/sparsela/memspace"
	"github.com/katalvlaran/sparsela/parallel"
)

// Matrix is an r×c row-major matrix placed in a memory space.
// data[i*c+j] holds element (i,j) of the device buffer.
type Matrix struct {
	r, c  int
	space memspace.Space
	mgr   *memspace.Manager

	dev  []float64 // device buffer, length r*c
	host []float64 // host mirror; aliases dev when space==Host

	closed bool
}

// NewMatrix creates an r×c zero matrix (r>0, c>0).
// Stage 1 (Validate): dimensions positive; space resolves to an arena.
// Stage 2 (Prepare): allocate flat device buffer plus mirror if needed.
// Stage 3 (Finalize): return the matrix or the underlying sentinel.
// Complexity: O(r*c).
func NewMatrix(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts)

	devArena, err := o.mgr.Arena(o.space)
	if err != nil {
		return nil, fmt.Errorf("NewMatrix: %w", err)
	}
	dev, err := devArena.Floats(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("NewMatrix: %w", err)
	}

	m := &Matrix{r: rows, c: cols, space: o.space, mgr: o.mgr, dev: dev, host: dev}
	if o.space != memspace.Host {
		hostArena, err := o.mgr.Arena(memspace.Host)
		if err != nil {
			devArena.ReleaseFloats(dev)
			return nil, fmt.Errorf("NewMatrix: %w", err)
		}
		if m.host, err = hostArena.Floats(rows * cols); err != nil {
			devArena.ReleaseFloats(dev)
			return nil, fmt.Errorf("NewMatrix: %w", err)
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Space returns the matrix's memory space. Complexity: O(1).
func (m *Matrix) Space() memspace.Space { return m.space }

// LocalBuffer exposes the flat row-major device buffer for kernels.
func (m *Matrix) LocalBuffer() []float64 { return m.dev }

// HostBuffer exposes the host mirror (same slice as LocalBuffer on host).
func (m *Matrix) HostBuffer() []float64 { return m.host }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if m.closed {
		return 0, fmt.Errorf("Matrix.%s: %w", method, ErrClosed)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves device-buffer element (row, col). Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.dev[idx], nil
}

// Set assigns device-buffer element (row, col). Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.dev[idx] = v

	return nil
}

// SetToZero zeroes the device buffer via a data-parallel fill.
func (m *Matrix) SetToZero() { m.SetToConstant(0) }

// SetToConstant fills the device buffer with c. Complexity: O(r*c) work.
func (m *Matrix) SetToConstant(c float64) {
	dd := m.dev
	parallel.For(len(dd), func(i int) { dd[i] = c })
}

// Clone returns a deep copy (same shape, space and manager; independent
// buffers, device and mirror both copied). Complexity: O(r*c).
func (m *Matrix) Clone() (*Matrix, error) {
	out, err := NewMatrix(m.r, m.c, WithSpace(m.space), WithManager(m.mgr))
	if err != nil {
		return nil, fmt.Errorf("Matrix.Clone: %w", err)
	}
	_ = m.mgr.CopyFloats(out.dev, m.dev)
	if m.space != memspace.Host {
		_ = m.mgr.CopyFloats(out.host, m.host)
	}

	return out, nil
}

// CopyToDev pushes the host mirror into the device buffer (no-op on host).
func (m *Matrix) CopyToDev() {
	if m.space == memspace.Host {
		return
	}
	_ = m.mgr.CopyFloats(m.dev, m.host)
}

// CopyFromDev pulls the device buffer into the host mirror (no-op on host).
func (m *Matrix) CopyFromDev() {
	if m.space == memspace.Host {
		return
	}
	_ = m.mgr.CopyFloats(m.host, m.dev)
}

// Close releases the owned buffers, alias-aware. Repeat calls are no-ops.
func (m *Matrix) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	if m.space != memspace.Host {
		if hostArena, err := m.mgr.Arena(memspace.Host); err == nil {
			hostArena.ReleaseFloats(m.host)
		}
	}
	if devArena, err := m.mgr.Arena(m.space); err == nil {
		devArena.ReleaseFloats(m.dev)
	}
	m.dev, m.host = nil, nil

	return nil
}
