// Package lp implements a two-phase primal simplex solver over a dense
// tableau.
//
// The engine accepts an objective sense (Min or Max), a sparse objective,
// a list of ≤ / = / ≥ constraints, and per-variable [Lo, Hi] boxes, and
// classifies the problem as:
//
//   - Bounded    — an optimal vertex and the extremum are returned;
//   - Unbounded  — the current vertex plus a direction ray along which the
//     objective improves forever while every constraint stays satisfied;
//   - Infeasible — detected in phase 1; the solution vector is all zeros
//     and the extremum is NaN.
//
// Internally every problem is minimized: a Max problem enters the tableau
// with its objective sign pre-flipped and has its extremum re-negated on
// the way out, so callers always see values in their own sense.
//
// Pivoting uses Bland's smallest-index entering rule with a strict
// positivity threshold (Options.PivotTol, default eps.PivotTol), which
// prevents cycling on degenerate vertices at the cost of occasionally
// longer pivot sequences. There is no presolve, no scaling, and no dual
// simplex; ill-conditioned instances are accepted as-is.
//
// Construction is per-solve: each call builds a fresh tableau, solves it,
// and discards it. Nothing is shared, so concurrent Solve calls are safe.
package lp
