// SPDX-License-Identifier: MIT

// Package supplychain - instance → program assembly.
package supplychain

import (
	"fmt"

	"github.com/katalvlaran/milp/lp"
	"github.com/katalvlaran/milp/model"
)

// Variable name builders. The bracketed composite names keep the flat
// namespace readable: P[A,F1], X[A,F1,W1], Y[A,W1,S1], U[A,S1], W[W1], S[S1].
func vP(i, j string) string    { return fmt.Sprintf("P[%s,%s]", i, j) }
func vX(i, j, k string) string { return fmt.Sprintf("X[%s,%s,%s]", i, j, k) }
func vY(i, k, l string) string { return fmt.Sprintf("Y[%s,%s,%s]", i, k, l) }
func vU(i, l string) string    { return fmt.Sprintf("U[%s,%s]", i, l) }
func vW(k string) string       { return fmt.Sprintf("W[%s]", k) }
func vS(l string) string       { return fmt.Sprintf("S[%s]", l) }

// Build assembles the max-profit program for p:
//
//	max  Σ price·Y − Σ cost·P − Σ tc1·V·X − Σ tc2·V·Y
//	     − Σ whRent·W − Σ storeRent·S − Σ penalty·U
//
// subject to the constraint groups documented inline. All variables are
// non-negative integers; W and S become binary through their ≤ 1 caps.
func Build(p Params) *model.Program {
	var (
		nI = len(p.Products)
		nJ = len(p.Factories)
		nK = len(p.Warehouses)
		nL = len(p.Stores)

		i, j, k, l int
	)

	// Objective: net profit. Y appears in both revenue and outbound
	// freight; the builder accumulates repeated names.
	var obj []model.Term
	for i = 0; i < nI; i++ {
		for l = 0; l < nL; l++ {
			for k = 0; k < nK; k++ {
				obj = append(obj, model.Term{Coef: p.Price[i][l], Name: vY(p.Products[i], p.Warehouses[k], p.Stores[l])})
			}
		}
	}
	for i = 0; i < nI; i++ {
		for j = 0; j < nJ; j++ {
			obj = append(obj, model.Term{Coef: -p.Costs[i][j], Name: vP(p.Products[i], p.Factories[j])})
		}
	}
	for i = 0; i < nI; i++ {
		for j = 0; j < nJ; j++ {
			for k = 0; k < nK; k++ {
				obj = append(obj, model.Term{Coef: -p.TC1[j][k] * p.Volume[i], Name: vX(p.Products[i], p.Factories[j], p.Warehouses[k])})
			}
		}
	}
	for i = 0; i < nI; i++ {
		for k = 0; k < nK; k++ {
			for l = 0; l < nL; l++ {
				obj = append(obj, model.Term{Coef: -p.TC2[k][l] * p.Volume[i], Name: vY(p.Products[i], p.Warehouses[k], p.Stores[l])})
			}
		}
	}
	for k = 0; k < nK; k++ {
		obj = append(obj, model.Term{Coef: -p.WHRent[k], Name: vW(p.Warehouses[k])})
	}
	for l = 0; l < nL; l++ {
		obj = append(obj, model.Term{Coef: -p.StoreRent[l], Name: vS(p.Stores[l])})
	}
	for i = 0; i < nI; i++ {
		for l = 0; l < nL; l++ {
			obj = append(obj, model.Term{Coef: -p.Penalty[i][l], Name: vU(p.Products[i], p.Stores[l])})
		}
	}

	var prog = model.New(lp.Max, obj...)

	// (1) Factory hours: Σ_i T[i,j]·P[i,j] ≤ Cap_j.
	for j = 0; j < nJ; j++ {
		var terms []model.Term
		for i = 0; i < nI; i++ {
			terms = append(terms, model.Term{Coef: p.Hours[i][j], Name: vP(p.Products[i], p.Factories[j])})
		}
		prog.Constrain(terms, "<=", p.Capacity[j])
	}

	// (2) Production leaves the factory: P[i,j] − Σ_k X[i,j,k] = 0.
	for i = 0; i < nI; i++ {
		for j = 0; j < nJ; j++ {
			var terms = []model.Term{{Coef: 1, Name: vP(p.Products[i], p.Factories[j])}}
			for k = 0; k < nK; k++ {
				terms = append(terms, model.Term{Coef: -1, Name: vX(p.Products[i], p.Factories[j], p.Warehouses[k])})
			}
			prog.Constrain(terms, "=", 0)
		}
	}

	// (3) Warehouse flow conservation: Σ_j X[i,j,k] − Σ_l Y[i,k,l] = 0.
	for i = 0; i < nI; i++ {
		for k = 0; k < nK; k++ {
			var terms []model.Term
			for j = 0; j < nJ; j++ {
				terms = append(terms, model.Term{Coef: 1, Name: vX(p.Products[i], p.Factories[j], p.Warehouses[k])})
			}
			for l = 0; l < nL; l++ {
				terms = append(terms, model.Term{Coef: -1, Name: vY(p.Products[i], p.Warehouses[k], p.Stores[l])})
			}
			prog.Constrain(terms, "=", 0)
		}
	}

	// (4) Warehouse throughput with open/close big-M:
	// Σ_{i,j} V_i·X[i,j,k] − WHCap_k·W[k] ≤ 0.
	for k = 0; k < nK; k++ {
		var terms []model.Term
		for i = 0; i < nI; i++ {
			for j = 0; j < nJ; j++ {
				terms = append(terms, model.Term{Coef: p.Volume[i], Name: vX(p.Products[i], p.Factories[j], p.Warehouses[k])})
			}
		}
		terms = append(terms, model.Term{Coef: -p.WHCap[k], Name: vW(p.Warehouses[k])})
		prog.Constrain(terms, "<=", 0)
	}

	// (5) Demand balance with unmet slack: Σ_k Y[i,k,l] + U[i,l] = D[i,l].
	for i = 0; i < nI; i++ {
		for l = 0; l < nL; l++ {
			var terms []model.Term
			for k = 0; k < nK; k++ {
				terms = append(terms, model.Term{Coef: 1, Name: vY(p.Products[i], p.Warehouses[k], p.Stores[l])})
			}
			terms = append(terms, model.Term{Coef: 1, Name: vU(p.Products[i], p.Stores[l])})
			prog.Constrain(terms, "=", p.Demand[i][l])
		}
	}

	// (6) Unmet demand cap (tightens the relaxation): U[i,l] ≤ D[i,l].
	for i = 0; i < nI; i++ {
		for l = 0; l < nL; l++ {
			prog.Constrain([]model.Term{{Coef: 1, Name: vU(p.Products[i], p.Stores[l])}}, "<=", p.Demand[i][l])
		}
	}

	// (7) Store open/close big-M (M = D[i,l]):
	// Σ_k Y[i,k,l] − D[i,l]·S[l] ≤ 0.
	for i = 0; i < nI; i++ {
		for l = 0; l < nL; l++ {
			var terms []model.Term
			for k = 0; k < nK; k++ {
				terms = append(terms, model.Term{Coef: 1, Name: vY(p.Products[i], p.Warehouses[k], p.Stores[l])})
			}
			terms = append(terms, model.Term{Coef: -p.Demand[i][l], Name: vS(p.Stores[l])})
			prog.Constrain(terms, "<=", 0)
		}
	}

	// (8) Binary caps: W[k] ≤ 1, S[l] ≤ 1 (non-negativity is implicit).
	for k = 0; k < nK; k++ {
		prog.Constrain([]model.Term{{Coef: 1, Name: vW(p.Warehouses[k])}}, "<=", 1)
	}
	for l = 0; l < nL; l++ {
		prog.Constrain([]model.Term{{Coef: 1, Name: vS(p.Stores[l])}}, "<=", 1)
	}

	return prog
}
