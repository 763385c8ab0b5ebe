// Package lp - sparse linear forms and constraints.
package lp

// LinearForm is a sparse mapping from variable index to coefficient.
// The zero value is not usable; start from NewForm or a composite literal.
type LinearForm map[int]float64

// NewForm returns an empty form.
func NewForm() LinearForm { return make(LinearForm) }

// Add accumulates coef onto variable idx (repeated indices sum) and
// returns the same form for chaining.
func (f LinearForm) Add(coef float64, idx int) LinearForm {
	f[idx] += coef

	return f
}

// Negate flips the sign of every coefficient in place.
func (f LinearForm) Negate() {
	var idx int
	for idx = range f {
		f[idx] = -f[idx]
	}
}

// Clone returns an independent copy of the form.
func (f LinearForm) Clone() LinearForm {
	var (
		cp   = make(LinearForm, len(f))
		idx  int
		coef float64
	)
	for idx, coef = range f {
		cp[idx] = coef
	}

	return cp
}

// Constraint couples a linear form with a relation and a right-hand side:
// Form ~ RHS. Constraints with a negative RHS are accepted; the engine
// normalizes them on tableau entry (both sides negated, LEQ↔GEQ flipped)
// without mutating the caller's value.
type Constraint struct {
	Form LinearForm
	Rel  Relation
	RHS  float64
}

// hasSlack reports whether the constraint contributes a slack column
// (only EQ rows enter the tableau without one). Relation flips during
// rhs normalization swap LEQ and GEQ, so slack presence is invariant.
func (c Constraint) hasSlack() bool { return c.Rel != EQ }

// normalized returns the coefficient sign, effective relation, and rhs
// after the non-negative-rhs normalization.
func (c Constraint) normalized() (sign float64, rel Relation, rhs float64) {
	if c.RHS >= 0 {
		return 1, c.Rel, c.RHS
	}

	rel = c.Rel
	if rel == LEQ {
		rel = GEQ
	} else if rel == GEQ {
		rel = LEQ
	}

	return -1, rel, -c.RHS
}
