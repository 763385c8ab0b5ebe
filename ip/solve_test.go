// Package ip_test validates the Branch-and-Bound search.
// Focus:
//  1. Classification on tiny hand-checked instances: integer cuts,
//     branching, root-integral shortcuts, infeasible and unbounded IPs.
//  2. Pruning behavior observable through NodesSolved.
//  3. Sentinels on malformed inputs and options.
//  4. The incumbent satisfies every constraint and is integral.
package ip_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/milp/eps"
	"github.com/katalvlaran/milp/ip"
	"github.com/katalvlaran/milp/lp"
)

const solTol = 1e-6

// approx compares float vectors within solTol via go-cmp.
func approx() cmp.Option { return cmpopts.EquateApprox(0, solTol) }

// knapsackCut is the instance
//
//	max 3x + y  s.t.  4x + 2y ≤ 11,  x ≥ 2,  y ≥ 2
//
// whose integer lattice is empty (4·2 + 2·2 = 12 > 11).
func knapsackCut() (lp.LinearForm, []lp.Constraint) {
	obj := lp.NewForm().Add(3, 0).Add(1, 1)
	cons := []lp.Constraint{
		{Form: lp.LinearForm{0: 4, 1: 2}, Rel: lp.LEQ, RHS: 11},
		{Form: lp.LinearForm{0: 1}, Rel: lp.GEQ, RHS: 2},
		{Form: lp.LinearForm{1: 1}, Rel: lp.GEQ, RHS: 2},
	}

	return obj, cons
}

// knapsackBranch is the instance
//
//	max 3x + y  s.t.  4x + 2y ≤ 11,  1 ≤ x ≤ 2,  y ≥ 0
//
// with LP optimum (2, 1.5) → 7.5 and IP optimum (2, 1) → 7.
func knapsackBranch() (lp.LinearForm, []lp.Constraint) {
	obj := lp.NewForm().Add(3, 0).Add(1, 1)
	cons := []lp.Constraint{
		{Form: lp.LinearForm{0: 4, 1: 2}, Rel: lp.LEQ, RHS: 11},
		{Form: lp.LinearForm{0: 1}, Rel: lp.GEQ, RHS: 1},
		{Form: lp.LinearForm{0: 1}, Rel: lp.LEQ, RHS: 2},
	}

	return obj, cons
}

func TestInfeasibleByIntegerCut(t *testing.T) {
	obj, cons := knapsackCut()

	res, err := ip.Solve(lp.Max, obj, cons, 2, ip.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ip.Infeasible, res.Status)
	require.Nil(t, res.Solution)
	// The incumbent bound never improved: −Inf in the Max sense.
	require.True(t, math.IsInf(res.Extremum, -1))
}

func TestBranchingFindsIntegerOptimum(t *testing.T) {
	obj, cons := knapsackBranch()

	res, err := ip.Solve(lp.Max, obj, cons, 2, ip.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ip.Bounded, res.Status)
	require.InDelta(t, 7, res.Extremum, solTol)
	require.Empty(t, cmp.Diff([]float64{2, 1}, res.Solution, approx()))
	// Root + one expansion (two children): the right child (x = 1.75,
	// bound 7.25) is expanded once more before its subtree is pruned.
	require.Equal(t, 5, res.NodesSolved)
}

// TestRootIntegralSkipsBranching: an already integral relaxation must
// return from the root without expanding anything.
func TestRootIntegralSkipsBranching(t *testing.T) {
	obj := lp.NewForm().Add(1, 0).Add(1, 1)
	cons := []lp.Constraint{{Form: lp.LinearForm{0: 1, 1: 1}, Rel: lp.GEQ, RHS: 3}}

	res, err := ip.Solve(lp.Min, obj, cons, 2, ip.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ip.Bounded, res.Status)
	require.InDelta(t, 3, res.Extremum, solTol)
	require.Equal(t, 1, res.NodesSolved)
	require.Empty(t, cmp.Diff([]float64{3, 0}, res.Solution, approx()))
}

// TestBranchCollapsesOneChild: splitting x = 2.5 under x ≤ 2.5 sends the
// right child ([3, +Inf)) straight to infeasibility.
func TestBranchCollapsesOneChild(t *testing.T) {
	obj := lp.NewForm().Add(2, 0)
	cons := []lp.Constraint{{Form: lp.LinearForm{0: 1}, Rel: lp.LEQ, RHS: 2.5}}

	res, err := ip.Solve(lp.Max, obj, cons, 1, ip.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ip.Bounded, res.Status)
	require.InDelta(t, 4, res.Extremum, solTol)
	require.Empty(t, cmp.Diff([]float64{2}, res.Solution, approx()))
	require.Equal(t, 3, res.NodesSolved) // root + both children, one dead
}

func TestUnboundedAbortsSearch(t *testing.T) {
	obj := lp.NewForm().Add(1, 0)

	res, err := ip.Solve(lp.Max, obj, nil, 1, ip.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ip.Unbounded, res.Status)
	require.True(t, math.IsInf(res.Extremum, 1))
	require.Nil(t, res.Solution)

	// The Min twin diverges the other way.
	neg := lp.NewForm().Add(-1, 0)
	res, err = ip.Solve(lp.Min, neg, nil, 1, ip.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ip.Unbounded, res.Status)
	require.True(t, math.IsInf(res.Extremum, -1))
}

// TestDeeperBranching works a fractional ping-pong instance:
//
//	max x + y  s.t.  2x + 2y ≤ 5
//
// Every relaxation vertex has value 2.5; the integer optimum is 2.
func TestDeeperBranching(t *testing.T) {
	obj := lp.NewForm().Add(1, 0).Add(1, 1)
	cons := []lp.Constraint{{Form: lp.LinearForm{0: 2, 1: 2}, Rel: lp.LEQ, RHS: 5}}

	res, err := ip.Solve(lp.Max, obj, cons, 2, ip.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ip.Bounded, res.Status)
	require.InDelta(t, 2, res.Extremum, solTol)

	// The incumbent is integral and feasible.
	x, y := res.Solution[0], res.Solution[1]
	require.True(t, eps.IsInt(x, eps.IntTol))
	require.True(t, eps.IsInt(y, eps.IntTol))
	require.LessOrEqual(t, 2*x+2*y, 5+solTol)
}

// TestSenseNegationLaw at the IP level: min −f equals −(max f) with the
// same assignment.
func TestSenseNegationLaw(t *testing.T) {
	obj, cons := knapsackBranch()

	maxRes, err := ip.Solve(lp.Max, obj, cons, 2, ip.DefaultOptions())
	require.NoError(t, err)

	neg := obj.Clone()
	neg.Negate()
	minRes, err := ip.Solve(lp.Min, neg, cons, 2, ip.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, ip.Bounded, minRes.Status)
	require.InDelta(t, -maxRes.Extremum, minRes.Extremum, solTol)
	require.Empty(t, cmp.Diff(maxRes.Solution, minRes.Solution, approx()))
}

func TestValidationSentinels(t *testing.T) {
	valid := lp.NewForm().Add(1, 0)

	_, err := ip.Solve(lp.Max, valid, nil, 0, ip.DefaultOptions())
	require.ErrorIs(t, err, ip.ErrBadVarCount)

	_, err = ip.Solve(lp.Max, lp.NewForm(), nil, 1, ip.DefaultOptions())
	require.ErrorIs(t, err, lp.ErrEmptyObjective)

	_, err = ip.Solve(lp.Max, valid, nil, 1, ip.Options{IntTol: -1})
	require.ErrorIs(t, err, ip.ErrBadIntTol)

	_, err = ip.Solve(lp.Max, valid, nil, 1, ip.Options{PivotTol: -1})
	require.ErrorIs(t, err, lp.ErrBadPivotTol)

	bad := []lp.Constraint{{Form: lp.LinearForm{0: math.NaN()}, Rel: lp.LEQ, RHS: 1}}
	_, err = ip.Solve(lp.Max, valid, bad, 1, ip.DefaultOptions())
	require.ErrorIs(t, err, lp.ErrBadCoefficient)
}
