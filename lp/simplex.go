// SPDX-License-Identifier: MIT

// Package lp - the two-phase simplex engine.
//
// Tableau assembly and both phases follow the classic scheme:
//  1. Normalize every constraint to a non-negative rhs.
//  2. Expand variable boxes into x ≥ lo / x ≤ hi rows.
//  3. LEQ rows start basic on their own slack; EQ and GEQ rows start on an
//     artificial basis (tableau.ArtificialBase).
//  4. Phase 1 drives the artificials out (or proves infeasibility).
//  5. Phase 2 optimizes the real objective from the feasible basis.
//
// ARTIFICIAL-VARIABLE CONTRACT (load-bearing): artificial variables are
// never materialized as tableau columns. An artificial for row i would be
// a +1 entry in its own row and, under the phase-1 objective "minimize the
// sum of artificials", a -1 reduced cost in row 0. Adding row i into row 0
// with scale +1 is exactly the elimination of that -1 against the row's
// +1, so after the loop in phase1 the header row holds the correct phase-1
// reduced costs without the columns ever existing. Materializing the
// columns and dropping them at the phase boundary would be equivalent but
// strictly larger.
package lp

import (
	"math"

	"github.com/katalvlaran/milp/eps"
	"github.com/katalvlaran/milp/tableau"
)

// engine holds the per-solve state. A dedicated struct (instead of
// closures over Solve locals) keeps the hot-path state explicit and the
// phases independently testable.
type engine struct {
	sense Sense
	obj   LinearForm
	n     int // general variable count; tableau columns 0..n-1
	tol   float64
	tab   *tableau.Tableau
}

// Solve classifies and solves one LP. See the package documentation for
// the exact contract of each Status.
//
// Errors: only validation sentinels (types.go); a structurally valid
// problem always solves to one of the three statuses.
//
// Complexity: assembly O(m·n); each pivot O(m·n); pivot count is finite
// under Bland's rule but exponential in the worst case.
func Solve(sense Sense, obj LinearForm, cons []Constraint, box []Bounds, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if err := Validate(sense, obj, cons, box); err != nil {
		return Result{}, err
	}

	var e = engine{
		sense: sense,
		obj:   obj,
		n:     len(box),
		tol:   opts.pivotTol(),
	}
	e.build(cons, box, opts)

	// Phase 1: obtain a feasible basis or prove there is none.
	if !e.phase1() {
		return Result{
			Status:   Infeasible,
			Solution: make([]float64, e.n),
			Extremum: math.NaN(),
		}, nil
	}

	// Phase 2: optimize the real objective.
	return e.phase2(), nil
}

// build assembles the (1+m)×(n+s+1) tableau from the constraints and the
// box-derived rows. Callers' constraints are read through their
// normalized view; nothing is mutated.
func (e *engine) build(cons []Constraint, box []Bounds, opts Options) {
	// Box rows: x ≥ lo when lo > 0, x ≤ hi when hi < +Inf. Their rhs is
	// non-negative by the bounds contract, so they never need the sign
	// normalization.
	var (
		boxCons = make([]Constraint, 0, 2*len(box))
		idx     int
		b       Bounds
	)
	for idx, b = range box {
		if b.Lo > 0 {
			boxCons = append(boxCons, Constraint{Form: LinearForm{idx: 1}, Rel: GEQ, RHS: b.Lo})
		}
		if !math.IsInf(b.Hi, 1) {
			boxCons = append(boxCons, Constraint{Form: LinearForm{idx: 1}, Rel: LEQ, RHS: b.Hi})
		}
	}

	// Slack census decides the column count up front (one contiguous
	// allocation).
	var (
		slacks int
		c      Constraint
	)
	for _, c = range cons {
		if c.hasSlack() {
			slacks++
		}
	}
	for _, c = range boxCons {
		if c.hasSlack() {
			slacks++
		}
	}

	var (
		rows = 1 + len(cons) + len(boxCons)
		cols = e.n + slacks + 1
	)
	// Shape is positive by construction (n ≥ 1 after validation).
	e.tab, _ = tableau.New(rows, cols, opts.tableauOptions())

	// Row fill. Slack columns are appended in row order starting at n.
	var (
		row      = 1
		slackCol = e.n - 1
		insert   = func(c Constraint) {
			var sign, rel, rhs = c.normalized()
			var i int
			var coef float64
			for i, coef = range c.Form {
				e.tab.Set(row, i, coef*sign)
			}
			if rel != EQ {
				slackCol++
				if rel == LEQ {
					e.tab.Set(row, slackCol, 1)
				} else {
					e.tab.Set(row, slackCol, -1)
				}
			}
			e.tab.Set(row, e.tab.RHSCol(), rhs)

			// LEQ rows are born basic on their slack; EQ and GEQ rows have
			// no natural basic column and start on an artificial basis.
			if rel == LEQ {
				e.tab.Base[row] = slackCol
			} else {
				e.tab.Base[row] = tableau.ArtificialBase
			}
			row++
		}
	)
	for _, c = range cons {
		insert(c)
	}
	for _, c = range boxCons {
		insert(c)
	}
}

// hasArtificial reports whether any constraint row still sits on an
// artificial basis.
func (e *engine) hasArtificial() bool {
	var i int
	for i = 1; i < e.tab.Rows(); i++ {
		if e.tab.Base[i] == tableau.ArtificialBase {
			return true
		}
	}

	return false
}

// phase1 obtains a feasible basis. Returns false when the problem is
// infeasible.
func (e *engine) phase1() bool {
	if !e.hasArtificial() {
		return true
	}

	// Install the phase-1 objective by eliminating each emulated
	// artificial column against its own row (see the package comment on
	// the artificial-variable contract).
	var i int
	for i = 1; i < e.tab.Rows(); i++ {
		if e.tab.Base[i] == tableau.ArtificialBase {
			e.tab.AddRowToRow(i, 0, 1)
		}
	}

	// The phase-1 objective is bounded below by zero, so the driver can
	// only stop at an optimum; a surviving artificial basis there means
	// the constraint set has no feasible point.
	if optimal, _ := e.runDriver(); !optimal || e.hasArtificial() {
		return false
	}

	// Clean the header row: theoretically all zero now, but pivoting
	// leaves rounding residue that would leak into phase 2.
	var j int
	for j = 0; j < e.tab.Cols(); j++ {
		e.tab.Set(0, j, 0)
	}

	return true
}

// phase2 installs the real objective into the header row, reduces it on
// the current basis, and runs the driver to the final classification.
func (e *engine) phase2() Result {
	// For Min the header carries -c (the driver pivots on positive header
	// entries, and entering a positive -c_j column decreases cost); for
	// Max it carries +c, which is minimizing -f.
	var signIn = -1.0
	if e.sense == Max {
		signIn = 1.0
	}
	var (
		idx  int
		coef float64
	)
	for idx, coef = range e.obj {
		e.tab.Set(0, idx, coef*signIn)
	}

	// Reduce the header on every basic column so the current basis reads
	// a zero reduced cost. LEQ slack bases have a zero objective entry and
	// are skipped by the tolerance check.
	var (
		i int
		b int
	)
	for i = 1; i < e.tab.Rows(); i++ {
		b = e.tab.Base[i]
		if b >= 0 && !eps.IsZero(e.tab.At(0, b), e.tol) {
			e.tab.AddRowToRow(i, 0, -e.tab.At(0, b))
		}
	}

	var optimal, enter = e.runDriver()
	if !optimal {
		return e.unboundedResult(enter)
	}

	return e.boundedResult()
}

// runDriver is the min-simplex loop: Bland's smallest-index entering
// column, strict-positivity min-ratio leaving row, pivot, repeat.
// Returns (true, -1) at an optimum, or (false, enteringColumn) when the
// ratio test finds no leaving row (the LP is unbounded along that column).
func (e *engine) runDriver() (bool, int) {
	for {
		var j = e.enteringColumn()
		if j < 0 {
			return true, -1
		}

		var r = e.minRatioRow(j)
		if r < 0 {
			return false, j
		}

		e.tab.Eliminate(r, j)
		e.tab.Base[r] = j
	}
}

// enteringColumn picks the smallest column index with a header entry
// > tol (Bland's rule; the rhs column is excluded). Returns -1 at an
// optimum.
func (e *engine) enteringColumn() int {
	var (
		last = e.tab.RHSCol()
		j    int
	)
	for j = 0; j < last; j++ {
		if eps.IsPos(e.tab.At(0, j), e.tol) {
			return j
		}
	}

	return -1
}

// minRatioRow picks the constraint row minimizing rhs/A[i,j] among rows
// with A[i,j] > tol. Strict "<" keeps the first minimizer, so ties break
// toward the smaller row index. Returns -1 when no row qualifies.
func (e *engine) minRatioRow(j int) int {
	var (
		last  = e.tab.RHSCol()
		best  = math.Inf(1)
		row   = -1
		i     int
		a     float64
		ratio float64
	)
	for i = 1; i < e.tab.Rows(); i++ {
		a = e.tab.At(i, j)
		if !eps.IsPos(a, e.tol) {
			continue
		}
		ratio = e.tab.At(i, last) / a
		if ratio < best {
			best = ratio
			row = i
		}
	}

	return row
}

// boundedResult extracts the vertex and the extremum from an optimal
// tableau. Slack bases (column ≥ n) carry no general-variable value.
func (e *engine) boundedResult() Result {
	var (
		sol  = make([]float64, e.n)
		last = e.tab.RHSCol()
		i    int
		b    int
	)
	for i = 1; i < e.tab.Rows(); i++ {
		b = e.tab.Base[i]
		if b >= 0 && b < e.n {
			sol[b] = e.tab.At(i, last)
		}
	}

	var signOut = 1.0
	if e.sense == Max {
		signOut = -1.0
	}

	return Result{
		Status:   Bounded,
		Solution: sol,
		Extremum: e.tab.At(0, last) * signOut,
	}
}

// unboundedResult builds the certificate for a failed ratio test on
// entering column enter: the current vertex plus the direction read off
// the entering column. Raising the entering variable by t moves each
// basic variable by −A[i,enter]·t, so the ray holds −A[i,enter] for
// general basics and 1 for the entering column when it is a general
// variable. The ray lives in variable space and is the same for both
// senses.
func (e *engine) unboundedResult(enter int) Result {
	var (
		sol  = make([]float64, e.n)
		ray  = make([]float64, e.n)
		last = e.tab.RHSCol()
		i    int
		b    int
	)
	if enter < e.n {
		ray[enter] = 1
	}
	for i = 1; i < e.tab.Rows(); i++ {
		b = e.tab.Base[i]
		if b >= 0 && b < e.n {
			sol[b] = e.tab.At(i, last)
			ray[b] = -e.tab.At(i, enter)
		}
	}

	var ext = math.Inf(-1)
	if e.sense == Max {
		ext = math.Inf(1)
	}

	return Result{
		Status:   Unbounded,
		Solution: sol,
		Ray:      ray,
		Extremum: ext,
	}
}
