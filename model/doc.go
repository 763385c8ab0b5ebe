// Package model is the symbolic surface of the solver: variables are
// referred to by name, constraints are assembled by chaining, and the
// integer assignment comes back keyed by name.
//
// A VarBimap owns the name↔index bijection and assigns dense indices
// 0..n-1 in order of first appearance, so the lp/ip engines work purely
// over indices and never see a string. The builder keeps the bimap per
// program; nothing is process-global.
//
// Typical use:
//
//	sol, err := model.New(lp.Max,
//	    model.Term{Coef: 3, Name: "x"},
//	    model.Term{Coef: 1, Name: "y"},
//	).
//	    Constrain([]model.Term{{Coef: 4, Name: "x"}, {Coef: 2, Name: "y"}}, "<=", 11).
//	    Constrain([]model.Term{{Coef: 1, Name: "x"}}, ">=", 1).
//	    Solve(ip.DefaultOptions())
//
// Malformed input (unknown relation string, empty objective, NaN
// coefficient) surfaces as an error from Solve before any solving work;
// chaining never panics and the first staged error wins.
package model
