// Package tableau provides the dense simplex tableau: a row-major matrix
// of float64 with the three row primitives the simplex method is built
// from (row scaling, scaled row addition, pivot elimination) plus the
// per-row basis bookkeeping.
//
// Layout (for an LP with m constraints, n general variables, s slacks):
//
//	row 0        — reduced-cost row (objective proxy)
//	rows 1..m    — one row per constraint
//	cols 0..n-1  — general variables
//	cols n..n+s-1 — slack variables
//	col  n+s     — right-hand sides
//
// Base[i] records which column is basic in constraint row i; the sentinel
// ArtificialBase (-1) marks a row whose basis is an artificial variable.
// Artificials are never materialized as columns — see the lp package for
// the phase-1 contract that relies on this.
//
// Eliminate has two semantically equivalent paths: a serial one and a
// row-parallel one (chunked goroutine fan-out). The parallel path is an
// explicit per-tableau option, never a process global, and tracks the
// serial path to within 1e-10 per entry (same per-row arithmetic, only
// the row order differs).
package tableau
