// Package supplychain_test validates the generator against hand-computed
// tables and its documented guarantees.
package supplychain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/milp/eps"
	"github.com/katalvlaran/milp/supplychain"
)

// TestGenerateDeterministic: identical configs, identical params.
func TestGenerateDeterministic(t *testing.T) {
	a := supplychain.Generate(supplychain.DefaultConfig())
	b := supplychain.Generate(supplychain.DefaultConfig())
	require.Empty(t, cmp.Diff(a, b))
}

// TestGenerateNames covers both naming schemes, including the A..Z
// wraparound for products.
func TestGenerateNames(t *testing.T) {
	p := supplychain.Generate(supplychain.DefaultConfig().WithSizes(28, 2, 1, 3))

	require.Equal(t, "A", p.Products[0])
	require.Equal(t, "Z", p.Products[25])
	require.Equal(t, "A2", p.Products[26])
	require.Equal(t, "B2", p.Products[27])
	require.Equal(t, []string{"F1", "F2"}, p.Factories)
	require.Equal(t, []string{"W1"}, p.Warehouses)
	require.Equal(t, []string{"S1", "S2", "S3"}, p.Stores)
}

// TestGenerateDefaultTables pins the hand-computed values of the default
// 3×2×1×2 instance.
func TestGenerateDefaultTables(t *testing.T) {
	p := supplychain.Generate(supplychain.DefaultConfig())

	require.Equal(t, []float64{1, 2, 3}, p.Volume)

	// Hours: 1+i for F1, 2+i for F2.
	require.Equal(t, [][]float64{{1, 2}, {2, 3}, {3, 4}}, p.Hours)

	// Costs: bases 200/300/400 at −8% (F1) and +8% (F2).
	require.Equal(t, [][]float64{{184, 216}, {276, 324}, {368, 432}}, p.Costs)

	// Demand: 20+5i+3(l mod 4).
	require.Equal(t, [][]float64{{20, 23}, {25, 28}, {30, 33}}, p.Demand)

	// Freight: TC1 = 8/10, TC2 = 9/11.
	require.Equal(t, [][]float64{{8}, {10}}, p.TC1)
	require.Equal(t, [][]float64{{9, 11}}, p.TC2)

	// Prices anchor to cheapest production (F1) + cheapest route (17/19
	// per unit volume) + margin (46/69/92).
	require.Equal(t, [][]float64{{247, 249}, {379, 383}, {511, 517}}, p.Price)

	// Penalties: floor(0.6·price).
	require.Equal(t, [][]float64{{148, 149}, {227, 229}, {306, 310}}, p.Penalty)

	// Capacities: 70% of the per-factory demand workload + 50.
	require.Equal(t, []float64{168, 223}, p.Capacity)

	// Warehouse: half the total demand volume (338) → 169.
	require.Equal(t, []float64{169}, p.WHCap)

	require.Equal(t, []float64{2200}, p.WHRent)
	require.Equal(t, []float64{6500, 7000}, p.StoreRent)
}

// TestGenerateGuarantees checks the documented invariants on a spread of
// sizes: integrality of every table, positive capacities, non-negative
// demand, and a strictly positive margin at every store via the cheapest
// route.
func TestGenerateGuarantees(t *testing.T) {
	sizes := [][4]int{{1, 1, 1, 1}, {2, 3, 2, 4}, {5, 3, 2, 4}}

	for _, sz := range sizes {
		p := supplychain.Generate(supplychain.DefaultConfig().WithSizes(sz[0], sz[1], sz[2], sz[3]))

		for _, table := range [][][]float64{p.Price, p.Demand, p.Penalty, p.Costs, p.Hours, p.TC1, p.TC2} {
			for _, row := range table {
				for _, v := range row {
					require.True(t, eps.IsInt(v, 0), "table value %v must be integral", v)
					require.GreaterOrEqual(t, v, 0.0)
				}
			}
		}

		for _, c := range p.Capacity {
			require.GreaterOrEqual(t, c, 1.0)
		}
		for _, c := range p.WHCap {
			require.GreaterOrEqual(t, c, 1.0)
		}

		// Positive margin: price must exceed cheapest production plus the
		// cheapest route's freight for that store.
		for i := range p.Products {
			minProd := p.Costs[i][0]
			for _, c := range p.Costs[i] {
				if c < minProd {
					minProd = c
				}
			}
			for l := range p.Stores {
				bestRoute := -1.0
				for k := range p.Warehouses {
					bestF := p.TC1[0][k]
					for j := range p.Factories {
						if p.TC1[j][k] < bestF {
							bestF = p.TC1[j][k]
						}
					}
					if route := bestF + p.TC2[k][l]; bestRoute < 0 || route < bestRoute {
						bestRoute = route
					}
				}
				require.Greater(t, p.Price[i][l], minProd+p.Volume[i]*bestRoute,
					"product %s at store %s must carry positive margin", p.Products[i], p.Stores[l])
			}
		}
	}
}
