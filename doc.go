// Package milp is a pure-Go mixed-integer linear programming toolkit:
// a two-phase tableau simplex engine wrapped in a best-first
// Branch-and-Bound search, with a symbolic model builder on top.
//
// 🚀 What is milp?
//
//	A small, deterministic solver stack:
//		• eps/         — the shared floating-point tolerance policy
//		• tableau/     — dense row-major simplex tableau with pivot elimination
//		                 (serial and row-parallel paths)
//		• lp/          — two-phase primal simplex: Bounded / Unbounded (with a
//		                 direction ray) / Infeasible classification
//		• ip/          — best-first Branch-and-Bound over LP relaxations, with
//		                 sequential and worker-pool drivers
//		• model/       — string-named variables, chained constraint assembly,
//		                 integer assignments back by name
//		• supplychain/ — a deterministic supply-chain MILP generator used to
//		                 exercise the solver on realistic instances
//
// ✨ Why choose milp?
//
//   - Self-contained – no cgo, no external solver libraries
//   - Deterministic – Bland's rule pivoting and stable heap tie-breaks give
//     reproducible sequential searches
//   - Honest answers – unboundedness comes with a certificate ray,
//     infeasibility is detected in phase 1, never guessed
//   - Concurrency that stays out of the way – parallel node expansion and
//     parallel pivoting are explicit per-solve options, never process globals
//
// Quick example (solve max 3x + y subject to 4x + 2y ≤ 11, x ≤ 2):
//
//	sol, err := model.New(lp.Max,
//	    model.Term{Coef: 3, Name: "x"},
//	    model.Term{Coef: 1, Name: "y"},
//	).
//	    Constrain([]model.Term{{Coef: 4, Name: "x"}, {Coef: 2, Name: "y"}}, "<=", 11).
//	    Constrain([]model.Term{{Coef: 1, Name: "x"}}, "<=", 2).
//	    Solve(ip.DefaultOptions())
//
// See cmd/scbench for a benchmark harness that times the solver across its
// execution modes on generated supply-chain instances.
//
//	go get github.com/katalvlaran/milp
package milp
