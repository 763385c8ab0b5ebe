// Package eps centralizes the floating-point tolerance policy shared by
// the simplex engine (lp, tableau) and the Branch-and-Bound search (ip).
//
// Two tolerances govern the whole solver:
//
//   - PivotTol (1e-10) — strict-positivity threshold for entering-column
//     selection and the min-ratio test, and the zero threshold for
//     reduced-cost cleanup between simplex phases.
//   - IntTol (1e-4) — how far from the nearest integer an LP value may sit
//     and still count as integral during Branch-and-Bound.
//
// The predicates are deliberately tiny and side-effect free; callers pass
// the tolerance explicitly so that a solve configured with a non-default
// tolerance never consults package state.
package eps
