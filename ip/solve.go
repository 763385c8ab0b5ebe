// SPDX-License-Identifier: MIT

// Package ip - the search engine and the sequential driver.
package ip

import (
	"math"

	"github.com/katalvlaran/milp/lp"
)

// engine holds all search data and policies. A dedicated struct keeps
// dependencies explicit and hot-path state predictable; the parallel
// driver in parallel.go shares it under a single mutex.
type engine struct {
	// Immutable problem statement, objective already in min form.
	sense  lp.Sense
	obj    lp.LinearForm
	cons   []lp.Constraint
	n      int
	intTol float64
	lpOpts lp.Options

	// Search state. upper is the incumbent objective bound in min form;
	// it only ever decreases. best is the incumbent solution vector.
	open        nodeHeap
	seq         uint64
	upper       float64
	best        []float64
	status      Status
	nodesSolved int
}

// Solve runs Branch-and-Bound on a pure integer program with n variables
// over the root box [0, +Inf)ⁿ. The objective sense is the caller's;
// constraints carry any variable-range restrictions beyond non-negativity.
//
// Errors: validation sentinels from this package and lp, before any
// solving work.
//
// Complexity: exponential in the worst case; practically governed by how
// quickly the incumbent tightens (best-first order helps exactly there).
func Solve(sense lp.Sense, obj lp.LinearForm, cons []lp.Constraint, n int, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if n <= 0 {
		// An empty objective registers no variables; report it as such.
		if len(obj) == 0 {
			return Result{}, lp.ErrEmptyObjective
		}

		return Result{}, ErrBadVarCount
	}
	if err := lp.Validate(sense, obj, cons, lp.DefaultBox(n)); err != nil {
		return Result{}, err
	}

	// Internal min form: a Max problem enters with a negated objective
	// and leaves with a re-negated extremum.
	var objMin = obj
	if sense == lp.Max {
		objMin = obj.Clone()
		objMin.Negate()
	}

	var e = engine{
		sense:  sense,
		obj:    objMin,
		cons:   cons,
		n:      n,
		intTol: opts.intTol(),
		lpOpts: opts.lpOptions(),
		upper:  math.Inf(1),
		status: Infeasible, // improved by the first incumbent
	}

	root, err := e.newNode(lp.DefaultBox(n))
	if err != nil {
		return Result{}, err
	}
	e.checkNode(root)

	if w := opts.workers(); w > 1 {
		err = e.runParallel(w)
	} else {
		err = e.runSequential()
	}
	if err != nil {
		return Result{}, err
	}

	return e.result(), nil
}

// runSequential is the deterministic driver: expand the lowest-bound open
// node, solve both children, classify them, repeat.
func (e *engine) runSequential() error {
	for e.open.Len() > 0 && e.status != Unbounded {
		var nd = e.popNode()

		left, err := e.newNode(nd.left)
		if err != nil {
			return err
		}
		right, err := e.newNode(nd.right)
		if err != nil {
			return err
		}

		e.checkNode(left)
		e.checkNode(right)
	}

	return nil
}

// checkNode routes one classified node: incumbent update, enqueue, abort,
// or bound-based discard. Callers in the parallel driver hold the engine
// mutex; the sequential driver owns the engine outright.
func (e *engine) checkNode(nd *node) {
	e.nodesSolved++

	switch {
	case nd.typ == ipFeasible && nd.bound < e.upper:
		// New incumbent: tighter integer solution, shrink the upper bound.
		e.status = Bounded
		e.best = nd.sol
		e.upper = nd.bound
	case nd.typ == lpFeasible && nd.bound < e.upper:
		// Fractional but not yet dominated: keep searching below it.
		e.pushNode(nd)
	case nd.typ == nodeUnbounded:
		// A diverging relaxation poisons the whole search.
		e.status = Unbounded
	}
	// nodeInfeasible and dominated nodes are discarded.
}

// result assembles the caller-facing Result in the caller's sense.
func (e *engine) result() Result {
	var signOut = 1.0
	if e.sense == lp.Max {
		signOut = -1.0
	}

	var res = Result{
		Status:      e.status,
		Extremum:    e.upper * signOut,
		NodesSolved: e.nodesSolved,
	}

	switch e.status {
	case Bounded:
		res.Solution = append([]float64(nil), e.best...)
	case Unbounded:
		// The objective diverges in the caller's sense: −Inf for Min,
		// +Inf for Max.
		if e.sense == lp.Max {
			res.Extremum = math.Inf(1)
		} else {
			res.Extremum = math.Inf(-1)
		}
	}

	return res
}
