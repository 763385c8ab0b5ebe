// Package model - program assembly and the solve façade.
package model

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/milp/ip"
	"github.com/katalvlaran/milp/lp"
)

// Program is a mutable integer program under construction. All variables
// are non-negative integers; range restrictions beyond that are expressed
// as constraints. Not safe for concurrent mutation.
type Program struct {
	sense lp.Sense
	vars  *VarBimap
	obj   lp.LinearForm
	cons  []lp.Constraint

	// err is the first assembly error; once set, Solve returns it and
	// further chaining is a no-op on the constraint list.
	err error
}

// New starts a program with the given sense and objective terms. Repeated
// names accumulate their coefficients.
func New(sense lp.Sense, terms ...Term) *Program {
	var p = Program{
		sense: sense,
		vars:  NewVarBimap(),
		obj:   lp.NewForm(),
	}
	var t Term
	for _, t = range terms {
		p.obj.Add(t.Coef, p.vars.Index(t.Name))
	}

	return &p
}

// Constrain appends "terms relation rhs" and returns the same program for
// chaining. relation is one of "<=", "=", ">=". An unknown relation is
// staged as the program error and reported by Solve.
func (p *Program) Constrain(terms []Term, relation string, rhs float64) *Program {
	if p.err != nil {
		return p
	}

	rel, ok := parseRelation(relation)
	if !ok {
		p.err = fmt.Errorf("constraint %d relation %q: %w", len(p.cons), relation, ErrUnknownRelation)

		return p
	}

	var (
		form = lp.NewForm()
		t    Term
	)
	for _, t = range terms {
		form.Add(t.Coef, p.vars.Index(t.Name))
	}
	p.cons = append(p.cons, lp.Constraint{Form: form, Rel: rel, RHS: rhs})

	return p
}

// Vars exposes the program's name↔index bijection (shared, not a copy).
func (p *Program) Vars() *VarBimap { return p.vars }

// Solve runs Branch-and-Bound and translates the incumbent back to names.
// Assembly errors and validation errors (empty objective, NaN values) are
// returned before any solving work.
func (p *Program) Solve(opts ip.Options) (Solution, error) {
	if p.err != nil {
		return Solution{}, p.err
	}

	res, err := ip.Solve(p.sense, p.obj, p.cons, p.vars.Count(), opts)
	if err != nil {
		return Solution{}, err
	}

	var sol = Solution{
		Status:      res.Status,
		Extremum:    res.Extremum,
		NodesSolved: res.NodesSolved,
	}
	if res.Status == ip.Bounded {
		sol.Assignment = make(map[string]int64, len(res.Solution))
		var (
			idx int
			v   float64
		)
		for idx, v = range res.Solution {
			name, _ := p.vars.Name(idx) // every solution index was registered
			sol.Assignment[name] = int64(math.Round(v))
		}
	}

	return sol, nil
}

// String renders the program in a stable order (objective, then
// constraints as added, variables by index). Intended for diagnostics.
func (p *Program) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", p.sense, formString(p.obj, p.vars))
	var c lp.Constraint
	for _, c = range p.cons {
		fmt.Fprintf(&b, "%s %s %.2f\n", formString(c.Form, p.vars), c.Rel, c.RHS)
	}

	return b.String()
}

// formString renders a sparse form as "c1[name1] + c2[name2] + …" with
// variables ordered by index.
func formString(f lp.LinearForm, vars *VarBimap) string {
	var idxs = make([]int, 0, len(f))
	var idx int
	for idx = range f {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)

	var b strings.Builder
	var i int
	for i, idx = range idxs {
		if i > 0 {
			b.WriteString(" + ")
		}
		name, _ := vars.Name(idx)
		fmt.Fprintf(&b, "%.2f[%s]", f[idx], name)
	}

	return b.String()
}

// parseRelation maps the surface relation strings onto lp relations.
func parseRelation(s string) (lp.Relation, bool) {
	switch s {
	case "<=":
		return lp.LEQ, true
	case "=":
		return lp.EQ, true
	case ">=":
		return lp.GEQ, true
	default:
		return 0, false
	}
}
