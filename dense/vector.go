// SPDX-License-Identifier: MIT

// Package dense: Vector — a per-rank local float64 vector with an optional
// device buffer and host mirror.
package dense

import (
	"fmt"

	"github.com/katalvlaran/sparsela/memspace"
	"github.com/katalvlaran/sparsela/parallel"
)

// Vector is a length-n float64 buffer placed in a memory space.
// When the space is memspace.Host the host mirror aliases the device buffer;
// otherwise the two are independent allocations synchronized only by
// explicit CopyToDev/CopyFromDev calls.
//
// Vector is not safe for concurrent mutation; kernels that scatter into a
// vector use atomic accumulation internally.
type Vector struct {
	n     int
	space memspace.Space
	mgr   *memspace.Manager

	dev  []float64 // device-side buffer (kernel operand)
	host []float64 // host mirror; aliases dev when space==Host

	closed bool
}

// NewVector creates a zero-initialized vector of length n (n>=0).
// Stage 1 (Validate): n>=0 and the space resolves to an arena.
// Stage 2 (Prepare): allocate device buffer, then mirror if spaces differ.
// Stage 3 (Finalize): return the vector or the underlying sentinel.
// Complexity: O(n).
func NewVector(n int, opts ...Option) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrBadShape)
	}
	o := gatherOptions(opts)

	devArena, err := o.mgr.Arena(o.space)
	if err != nil {
		return nil, fmt.Errorf("NewVector: %w", err)
	}

	dev, err := devArena.Floats(n)
	if err != nil {
		return nil, fmt.Errorf("NewVector: %w", err)
	}

	v := &Vector{n: n, space: o.space, mgr: o.mgr, dev: dev, host: dev}
	if o.space != memspace.Host {
		hostArena, err := o.mgr.Arena(memspace.Host)
		if err != nil {
			devArena.ReleaseFloats(dev)
			return nil, fmt.Errorf("NewVector: %w", err)
		}
		if v.host, err = hostArena.Floats(n); err != nil {
			devArena.ReleaseFloats(dev)
			return nil, fmt.Errorf("NewVector: %w", err)
		}
	}

	return v, nil
}

// Size returns the vector length. Complexity: O(1).
func (v *Vector) Size() int { return v.n }

// Space returns the vector's memory space. Complexity: O(1).
func (v *Vector) Space() memspace.Space { return v.space }

// LocalData exposes the device-side buffer for kernel consumption.
// Callers crossing memory spaces must synchronize explicitly around raw use.
func (v *Vector) LocalData() []float64 { return v.dev }

// HostData exposes the host mirror (the same slice as LocalData on host).
func (v *Vector) HostData() []float64 { return v.host }

// At returns element i of the device buffer.
// Returns ErrOutOfRange for i<0 or i>=Size(). Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if v.closed {
		return 0, fmt.Errorf("Vector.At: %w", ErrClosed)
	}
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.dev[i], nil
}

// Set assigns element i of the device buffer.
// Returns ErrOutOfRange for i<0 or i>=Size(). Complexity: O(1).
func (v *Vector) Set(i int, val float64) error {
	if v.closed {
		return fmt.Errorf("Vector.Set: %w", ErrClosed)
	}
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.dev[i] = val

	return nil
}

// SetToConstant fills the device buffer with c via a data-parallel fill.
// Complexity: O(n) work.
func (v *Vector) SetToConstant(c float64) {
	dd := v.dev
	parallel.For(v.n, func(i int) { dd[i] = c })
}

// CopyToDev pushes the host mirror into the device buffer.
// No-op when the space is the host space (buffers alias).
func (v *Vector) CopyToDev() {
	if v.space == memspace.Host {
		return
	}
	_ = v.mgr.CopyFloats(v.dev, v.host) // lengths fixed equal at construction
}

// CopyFromDev pulls the device buffer into the host mirror.
// No-op when the space is the host space (buffers alias).
func (v *Vector) CopyFromDev() {
	if v.space == memspace.Host {
		return
	}
	_ = v.mgr.CopyFloats(v.host, v.dev)
}

// Close releases the owned buffers, mirror first, respecting aliasing so no
// buffer is released twice. Subsequent Close calls are no-ops.
func (v *Vector) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true

	if v.space != memspace.Host {
		if hostArena, err := v.mgr.Arena(memspace.Host); err == nil {
			hostArena.ReleaseFloats(v.host)
		}
	}
	if devArena, err := v.mgr.Arena(v.space); err == nil {
		devArena.ReleaseFloats(v.dev)
	}
	v.dev, v.host = nil, nil

	return nil
}
