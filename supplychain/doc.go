// Package supplychain generates deterministic supply-chain MILP instances
// and assembles them into solvable programs. It exists to exercise the
// solver stack on realistic inputs: every value is integer, every product
// carries a positive per-unit margin, and capacities sit deliberately
// below total demand so the optimum has to trade off production, freight,
// fixed rents, and unmet-demand penalties.
//
// The instance models I products flowing from J factories through K
// warehouses into L stores:
//
//	P[i,j]   units of product i produced at factory j
//	X[i,j,k] units shipped factory j → warehouse k
//	Y[i,k,l] units shipped warehouse k → store l
//	U[i,l]   unmet demand of product i at store l
//	W[k]     warehouse k open (binary via a ≤ 1 cap)
//	S[l]     store l open (binary via a ≤ 1 cap)
//
// maximizing revenue − production − volume-priced freight − rents −
// penalties, subject to factory hours, flow conservation at factories and
// warehouses, volume throughput limits with open/close big-M logic, and
// demand balance with an explicit unmet-demand slack.
//
// Generate is pure: the same Config always yields the same Params, so
// benchmarks and cross-driver comparisons run on identical instances.
package supplychain
