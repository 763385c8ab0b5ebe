// Package ip - Branch-and-Bound nodes.
package ip

import (
	"math"

	"github.com/katalvlaran/milp/eps"
	"github.com/katalvlaran/milp/lp"
)

// nodeType classifies the LP relaxation of one bound box.
type nodeType int

const (
	// ipFeasible: the LP optimum is integral — an incumbent candidate.
	ipFeasible nodeType = iota
	// lpFeasible: the LP optimum is fractional — branchable.
	lpFeasible
	// nodeInfeasible: the box admits no feasible point.
	nodeInfeasible
	// nodeUnbounded: the relaxation diverges; the search must abort.
	nodeUnbounded
)

// node packages one solved relaxation with its branching decision.
type node struct {
	typ nodeType

	// sol is the LP vertex (meaningful for ipFeasible / lpFeasible).
	sol []float64

	// bound is the LP extremum in min form; integer solutions inside this
	// box can only be ≥ bound.
	bound float64

	// left and right are the child bound boxes, prepared only for
	// lpFeasible: the split variable's box is tightened to [lo, s] on the
	// left and [s+1, hi] on the right, s = floor of its LP value.
	left, right []lp.Bounds

	// seq is the heap insertion stamp used to break bound ties.
	seq uint64
}

// newNode solves the relaxation over box and classifies it. The split
// variable is the smallest-index fractional entry; child boxes stay valid
// because branching bounds are always integers and the LP vertex respects
// the parent box.
func (e *engine) newNode(box []lp.Bounds) (*node, error) {
	res, err := lp.Solve(lp.Min, e.obj, e.cons, box, e.lpOpts)
	if err != nil {
		return nil, err
	}

	var nd = node{sol: res.Solution, bound: res.Extremum}
	switch res.Status {
	case lp.Infeasible:
		nd.typ = nodeInfeasible
	case lp.Unbounded:
		nd.typ = nodeUnbounded
	default: // lp.Bounded
		var split = fractionalIndex(res.Solution, e.intTol)
		if split < 0 {
			nd.typ = ipFeasible

			break
		}

		nd.typ = lpFeasible
		nd.left = cloneBox(box)
		nd.right = cloneBox(box)

		var s = math.Floor(res.Solution[split])
		nd.left[split].Hi = s
		nd.right[split].Lo = s + 1
	}

	return &nd, nil
}

// fractionalIndex returns the smallest index whose value is non-integral
// within tol, or -1 when the vector is integral.
func fractionalIndex(sol []float64, tol float64) int {
	var i int
	for i = range sol {
		if !eps.IsInt(sol[i], tol) {
			return i
		}
	}

	return -1
}

// cloneBox copies a bound box so children never alias the parent.
func cloneBox(box []lp.Bounds) []lp.Bounds {
	var cp = make([]lp.Bounds, len(box))
	copy(cp, box)

	return cp
}
