// Package supplychain - the deterministic parameter generator.
//
// All arithmetic is integer-valued (stored as float64 for the solver) and
// derived from Config by closed formulas: no randomness, no state. Prices
// are anchored to the cheapest production + cheapest route so that every
// product sells at a positive per-unit margin at at least one store.
package supplychain

import (
	"fmt"
	"math"
)

// Params is the fully instantiated parameter set of one instance. All
// tables are indexed by the dense positions of the name slices.
type Params struct {
	Products   []string // I product names: A, B, …, Z, A2, B2, …
	Factories  []string // J factory names: F1, F2, …
	Warehouses []string // K warehouse names: W1, W2, …
	Stores     []string // L store names: S1, S2, …

	Volume []float64 // I: cubic volume per unit

	Price   [][]float64 // I×L: sale price per unit
	Demand  [][]float64 // I×L: demand cap
	Penalty [][]float64 // I×L: unmet-demand penalty per unit

	Costs    [][]float64 // I×J: production cost per unit
	Hours    [][]float64 // I×J: labor hours per unit
	Capacity []float64   // J: factory hour cap

	WHRent []float64 // K: warehouse fixed rent
	WHCap  []float64 // K: warehouse volume throughput cap

	StoreRent []float64 // L: store fixed rent

	TC1 [][]float64 // J×K: freight factory→warehouse, per unit volume
	TC2 [][]float64 // K×L: freight warehouse→store, per unit volume
}

// productNames yields A..Z, then A2..Z2, and so on.
func productNames(n int) []string {
	var (
		names = make([]string, 0, n)
		i     int
	)
	for i = 0; i < n; i++ {
		var (
			base  = byte('A' + i%26)
			round = i / 26
		)
		if round == 0 {
			names = append(names, string(base))
		} else {
			names = append(names, fmt.Sprintf("%c%d", base, round+1))
		}
	}

	return names
}

// seqNames yields prefix1..prefixN.
func seqNames(prefix string, n int) []string {
	var (
		names = make([]string, 0, n)
		i     int
	)
	for i = 0; i < n; i++ {
		names = append(names, fmt.Sprintf("%s%d", prefix, i+1))
	}

	return names
}

// Generate instantiates the parameter tables for cfg. Pure and
// deterministic: identical configs produce identical params.
func Generate(cfg Config) Params {
	var (
		nI = cfg.Products
		nJ = cfg.Factories
		nK = cfg.Warehouses
		nL = cfg.Stores
	)

	var p = Params{
		Products:   productNames(nI),
		Factories:  seqNames("F", nJ),
		Warehouses: seqNames("W", nK),
		Stores:     seqNames("S", nL),
	}

	// Volumes.
	p.Volume = make([]float64, nI)
	var i, j, k, l int
	for i = 0; i < nI; i++ {
		p.Volume[i] = float64(maxInt(1, cfg.VolStart+cfg.VolStep*i))
	}

	// Unit labor hours.
	p.Hours = grid(nI, nJ)
	for i = 0; i < nI; i++ {
		for j = 0; j < nJ; j++ {
			p.Hours[i][j] = float64(maxInt(1, cfg.TimeBase+i+(j%2)*cfg.TimeParityBonus))
		}
	}

	// Production costs: per-product base spread across factories by a
	// linear gradient from −CostGradPct% to +CostGradPct%.
	p.Costs = grid(nI, nJ)
	for i = 0; i < nI; i++ {
		var base = maxInt(1, cfg.CostBase+cfg.CostStep*i)
		for j = 0; j < nJ; j++ {
			var shift int
			if nJ > 1 {
				shift = (j*(2*cfg.CostGradPct))/(nJ-1) - cfg.CostGradPct
			}
			p.Costs[i][j] = float64(maxInt(1, base*(100+shift)/100))
		}
	}

	// Demand.
	p.Demand = grid(nI, nL)
	for i = 0; i < nI; i++ {
		for l = 0; l < nL; l++ {
			p.Demand[i][l] = float64(maxInt(0, cfg.DemandBase+cfg.DemandIStep*i+cfg.DemandLStep*(l%4)))
		}
	}

	// Freight, per unit volume.
	p.TC1 = grid(nJ, nK)
	for j = 0; j < nJ; j++ {
		for k = 0; k < nK; k++ {
			p.TC1[j][k] = float64(maxInt(0, cfg.TC1Base+cfg.TCStep*((j%3)+(k%4))))
		}
	}
	p.TC2 = grid(nK, nL)
	for k = 0; k < nK; k++ {
		for l = 0; l < nL; l++ {
			p.TC2[k][l] = float64(maxInt(0, cfg.TC2Base+cfg.TCStep*((k%4)+(l%4))))
		}
	}

	// Cheapest production per product and cheapest route volume rate per
	// store, the anchors that keep margins positive.
	var minProd = make([]int, nI)
	for i = 0; i < nI; i++ {
		var mn = math.MaxInt
		for j = 0; j < nJ; j++ {
			mn = minInt(mn, int(p.Costs[i][j]))
		}
		minProd[i] = mn
	}
	var minShipPerVol = make([]int, nL)
	for l = 0; l < nL; l++ {
		var best = math.MaxInt
		for k = 0; k < nK; k++ {
			var bestF = math.MaxInt
			for j = 0; j < nJ; j++ {
				bestF = minInt(bestF, int(p.TC1[j][k]))
			}
			best = minInt(best, bestF+int(p.TC2[k][l]))
		}
		minShipPerVol[l] = best
	}

	// Prices: cheapest production + cheapest route + margin, with a hard
	// floor of one currency unit of margin.
	p.Price = grid(nI, nL)
	for i = 0; i < nI; i++ {
		var margin = int(math.Floor(float64(minProd[i]) * cfg.MarginFrac))
		margin = maxInt(margin, cfg.MarginFloorBase+cfg.MarginFloorStep*i)
		margin = maxInt(1, margin)
		for l = 0; l < nL; l++ {
			var ship = int(p.Volume[i]) * maxInt(0, minShipPerVol[l])
			var price = minProd[i] + ship + margin
			price = maxInt(price, minProd[i]+ship+1)
			p.Price[i][l] = float64(price)
		}
	}

	// Unmet-demand penalties.
	p.Penalty = grid(nI, nL)
	for i = 0; i < nI; i++ {
		for l = 0; l < nL; l++ {
			p.Penalty[i][l] = float64(maxInt(0, int(math.Floor(p.Price[i][l]*cfg.PenaltyFrac))))
		}
	}

	// Factory hour caps: CapUtil share of an even split of the total
	// demand workload, plus the buffer.
	var sumD = make([]int, nI)
	for i = 0; i < nI; i++ {
		var s int
		for l = 0; l < nL; l++ {
			s += int(p.Demand[i][l])
		}
		sumD[i] = s
	}
	p.Capacity = make([]float64, nJ)
	for j = 0; j < nJ; j++ {
		var hours int64
		for i = 0; i < nI; i++ {
			hours += int64(sumD[i]) * int64(p.Hours[i][j])
		}
		var hourCap = int64(math.Floor(float64(hours/int64(maxInt(1, nJ)))*cfg.CapUtil)) + int64(cfg.CapBuffer)
		if hourCap < 1 {
			hourCap = 1
		}
		p.Capacity[j] = float64(hourCap)
	}

	// Warehouse throughput caps: a share of total demand volume.
	var totalVol int64
	for i = 0; i < nI; i++ {
		totalVol += int64(sumD[i]) * int64(p.Volume[i])
	}
	p.WHCap = make([]float64, nK)
	for k = 0; k < nK; k++ {
		var volCap = int64(math.Floor(float64(totalVol) * cfg.WHCapacityShare / float64(maxInt(1, nK))))
		if volCap < 1 {
			volCap = 1
		}
		p.WHCap[k] = float64(volCap)
	}

	// Fixed rents.
	p.WHRent = make([]float64, nK)
	for k = 0; k < nK; k++ {
		p.WHRent[k] = float64(cfg.WHRentBase + cfg.WHRentStep*(k+1))
	}
	p.StoreRent = make([]float64, nL)
	for l = 0; l < nL; l++ {
		p.StoreRent[l] = float64(cfg.StoreRentBase + cfg.StoreRentStep*(l+1))
	}

	return p
}

// grid allocates an r×c zero table.
func grid(r, c int) [][]float64 {
	var (
		g = make([][]float64, r)
		i int
	)
	for i = range g {
		g[i] = make([]float64, c)
	}

	return g
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
