// SPDX-License-Identifier: MIT

// Package parallel: chunked parallel-for and reductions.
//
// Purpose:
//   - Give matrix kernels one canonical way to run data-parallel index loops.
//   - Keep the execution policy in a single place (worker count, grain size).
//
// Determinism & Policy:
//   - Chunk boundaries are deterministic for a given n and worker count; the
//     interleaving of chunks is not. Kernels must not rely on index order.
//   - Workers are plain goroutines joined by a WaitGroup; no pool is kept
//     alive between calls and no call ever blocks on external input.
package parallel

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// serialGrain is the range length below which For runs on the calling
// goroutine: spawning workers for tiny ranges costs more than it saves.
const serialGrain = 1024

// workers returns the worker count for a range of length n.
func workers(n int) int {
	w := runtime.NumCPU()
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}

	return w
}

// For runs fn(i) for every i in [0,n), splitting the range into contiguous
// chunks across up to runtime.NumCPU() workers. fn must be safe to call
// concurrently for distinct indices; writes to shared destinations must go
// through AddFloat64 or equivalent synchronization.
// Complexity: O(n) work, O(n/P) span.
func For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	// Small ranges: the goroutine fan-out would dominate the loop body.
	if n < serialGrain {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}

	w := workers(n)
	chunk := (n + w - 1) / w

	var wg sync.WaitGroup
	wg.Add(w)
	for g := 0; g < w; g++ {
		lo := g * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// ReduceMax returns the maximum of init and fn(i) over i in [0,n).
// Per-worker partial maxima are combined after the join, so fn itself needs
// no synchronization. For n<=0 the result is init.
// Complexity: O(n) work, O(n/P) span.
func ReduceMax(n int, init float64, fn func(i int) float64) float64 {
	if n <= 0 {
		return init
	}
	if n < serialGrain {
		out := init
		for i := 0; i < n; i++ {
			if v := fn(i); v > out {
				out = v
			}
		}

		return out
	}

	w := workers(n)
	chunk := (n + w - 1) / w
	part := make([]float64, w) // one partial per worker, no false-sharing concern at this scale

	var wg sync.WaitGroup
	wg.Add(w)
	for g := 0; g < w; g++ {
		lo := g * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		go func(g, lo, hi int) {
			defer wg.Done()
			local := init
			for i := lo; i < hi; i++ {
				if v := fn(i); v > local {
					local = v
				}
			}
			part[g] = local
		}(g, lo, hi)
	}
	wg.Wait()

	out := init
	for _, v := range part {
		if v > out {
			out = v
		}
	}

	return out
}

// Count returns the number of indices i in [0,n) for which pred(i) is true.
// Per-worker partial counts are combined after the join.
// Complexity: O(n) work, O(n/P) span.
func Count(n int, pred func(i int) bool) int {
	if n <= 0 {
		return 0
	}
	if n < serialGrain {
		out := 0
		for i := 0; i < n; i++ {
			if pred(i) {
				out++
			}
		}

		return out
	}

	w := workers(n)
	chunk := (n + w - 1) / w
	part := make([]int, w)

	var wg sync.WaitGroup
	wg.Add(w)
	for g := 0; g < w; g++ {
		lo := g * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		go func(g, lo, hi int) {
			defer wg.Done()
			local := 0
			for i := lo; i < hi; i++ {
				if pred(i) {
					local++
				}
			}
			part[g] = local
		}(g, lo, hi)
	}
	wg.Wait()

	out := 0
	for _, c := range part {
		out += c
	}

	return out
}

// AddFloat64 atomically performs *addr += delta via a CAS loop over the
// float's bit pattern. Used for scatter-add destinations that multiple
// iterations may target concurrently.
func AddFloat64(addr *float64, delta float64) {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		cur := math.Float64frombits(old)
		next := math.Float64bits(cur + delta)
		if atomic.CompareAndSwapUint64(bits, old, next) {
			return
		}
	}
}
