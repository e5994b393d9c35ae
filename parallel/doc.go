// Package parallel provides bounded data-parallel loops and reductions over
// integer index ranges, plus atomic float64 accumulation for scatter-add
// targets shared between iterations.
//
// The parallel package provides:
//
//   - For: a parallel-for over [0,n) split into contiguous chunks across a
//     fixed set of workers; serial below a small grain threshold.
//   - ReduceMax / Count: parallel reductions with per-worker partials
//     combined after the join.
//   - AddFloat64: lock-free accumulation into a shared float64.
//
// Every call is synchronous and non-cancellable: it is a bounded loop that
// completes before returning. Iteration order across indices is unspecified;
// floating-point accumulation order is therefore non-deterministic when
// scatter targets collide.
package parallel
