// Package supplychain - generator knobs.
package supplychain

// Config tunes the instance generator. All knobs are chosen so the
// generated tables stay small, integral, and profitable per unit; see
// Generate for how each one enters the arithmetic.
type Config struct {
	// Sizes: products, factories, warehouses, stores.
	Products, Factories, Warehouses, Stores int

	// Volume per unit: V_i = max(1, VolStart + VolStep·i).
	VolStart, VolStep int

	// Unit labor: T[i,j] = max(1, TimeBase + i + (j mod 2)·TimeParityBonus).
	TimeBase, TimeParityBonus int

	// Production cost: base_i = CostBase + CostStep·i, spread across
	// factories by a linear ±CostGradPct percent gradient.
	CostBase, CostStep, CostGradPct int

	// Demand: D[i,l] = DemandBase + DemandIStep·i + DemandLStep·(l mod 4).
	DemandBase, DemandIStep, DemandLStep int

	// Freight per unit volume: TC1[j,k] = TC1Base + TCStep·((j mod 3)+(k mod 4)),
	// TC2[k,l] = TC2Base + TCStep·((k mod 4)+(l mod 4)).
	TC1Base, TC2Base, TCStep int

	// Price: minProd_i + V_i·cheapestRoute_l + margin_i, where margin_i is
	// max(floor(MarginFrac·minProd_i), MarginFloorBase + MarginFloorStep·i).
	MarginFrac                       float64
	MarginFloorBase, MarginFloorStep int

	// Penalty for unmet demand: floor(PenaltyFrac·price).
	PenaltyFrac float64

	// Factory hours: CapUtil share of the per-factory demand workload,
	// plus a small buffer.
	CapUtil   float64
	CapBuffer int

	// Warehouse throughput: WHCapacityShare of total demand volume per
	// warehouse, at least 1.
	WHCapacityShare float64

	// Fixed rents: WHRentBase + WHRentStep·(k+1) per warehouse and
	// StoreRentBase + StoreRentStep·(l+1) per store.
	WHRentBase, WHRentStep       int
	StoreRentBase, StoreRentStep int
}

// DefaultConfig returns the canonical small instance (3 products, 2
// factories, 1 warehouse, 2 stores) with the stock knob values.
func DefaultConfig() Config {
	return Config{
		Products:   3,
		Factories:  2,
		Warehouses: 1,
		Stores:     2,

		VolStart: 1,
		VolStep:  1,

		TimeBase:        1,
		TimeParityBonus: 1,

		CostBase:    200,
		CostStep:    100,
		CostGradPct: 8,

		DemandBase:  20,
		DemandIStep: 5,
		DemandLStep: 3,

		TC1Base: 8,
		TC2Base: 9,
		TCStep:  2,

		MarginFrac:      0.25,
		MarginFloorBase: 20,
		MarginFloorStep: 5,

		PenaltyFrac: 0.6,

		CapUtil:   0.7,
		CapBuffer: 50,

		WHCapacityShare: 0.5,

		WHRentBase:    2000,
		WHRentStep:    200,
		StoreRentBase: 6000,
		StoreRentStep: 500,
	}
}

// WithSizes returns a copy of c resized to i products, j factories,
// k warehouses, and l stores.
func (c Config) WithSizes(i, j, k, l int) Config {
	c.Products, c.Factories, c.Warehouses, c.Stores = i, j, k, l

	return c
}
