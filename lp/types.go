// Package lp - core types and sentinel errors.
package lp

import (
	"errors"
	"math"
)

// Sentinel errors returned before any solving work begins. Malformed
// input never leaves partial state behind; Solve validates everything,
// then builds the tableau.
var (
	// ErrEmptyObjective indicates an objective with no terms.
	ErrEmptyObjective = errors.New("lp: objective has no terms")
	// ErrBadCoefficient indicates a NaN or ±Inf coefficient.
	ErrBadCoefficient = errors.New("lp: coefficient is not finite")
	// ErrBadRHS indicates a NaN or ±Inf right-hand side.
	ErrBadRHS = errors.New("lp: right-hand side is not finite")
	// ErrBadRelation indicates a Relation outside LEQ/EQ/GEQ.
	ErrBadRelation = errors.New("lp: unknown constraint relation")
	// ErrVarIndex indicates a variable index outside [0, n).
	ErrVarIndex = errors.New("lp: variable index out of range")
	// ErrBadBounds indicates Lo < 0, Lo > Hi, or a NaN bound.
	ErrBadBounds = errors.New("lp: invalid variable bounds")
	// ErrBadSense indicates a Sense outside Min/Max.
	ErrBadSense = errors.New("lp: unknown objective sense")
	// ErrBadPivotTol indicates a negative pivot tolerance.
	ErrBadPivotTol = errors.New("lp: pivot tolerance must be non-negative")
)

// Sense selects minimization or maximization of the objective.
type Sense int

const (
	// Min minimizes the objective.
	Min Sense = iota
	// Max maximizes the objective.
	Max
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	if s == Min {
		return "min"
	}

	return "max"
}

// Relation is the comparison between a constraint's linear form and its
// right-hand side.
type Relation int

const (
	// LEQ is "≤ rhs".
	LEQ Relation = iota
	// EQ is "= rhs".
	EQ
	// GEQ is "≥ rhs".
	GEQ
)

// String implements fmt.Stringer.
func (r Relation) String() string {
	switch r {
	case LEQ:
		return "<="
	case GEQ:
		return ">="
	default:
		return "="
	}
}

// Status classifies a solved LP.
type Status int

const (
	// Bounded means an optimal vertex exists and was found.
	Bounded Status = iota
	// Unbounded means the objective improves without limit along Result.Ray.
	Unbounded
	// Infeasible means no point satisfies all constraints.
	Infeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Bounded:
		return "Bounded"
	case Unbounded:
		return "Unbounded"
	default:
		return "Infeasible"
	}
}

// Result is the outcome of one LP solve.
type Result struct {
	// Status classifies the problem.
	Status Status

	// Solution holds one value per general variable. For Bounded it is the
	// optimal vertex; for Unbounded it is the feasible vertex the ray
	// starts from; for Infeasible it is all zeros.
	Solution []float64

	// Ray is the unbounded direction (nil unless Status == Unbounded).
	// Moving from Solution along any positive multiple of Ray keeps every
	// constraint satisfied while improving the objective forever.
	Ray []float64

	// Extremum is the optimal objective value in the caller's sense:
	// finite for Bounded, ±Inf for Unbounded, NaN for Infeasible.
	Extremum float64
}

// Bounds is the closed interval [Lo, Hi] of one general variable.
// Lo must be ≥ 0 (the simplex form assumes non-negative variables);
// Hi may be math.Inf(1) for an unbounded-above variable.
type Bounds struct {
	Lo, Hi float64
}

// DefaultBox returns the root bound box [0, +Inf) for n variables.
func DefaultBox(n int) []Bounds {
	var (
		box = make([]Bounds, n)
		inf = math.Inf(1)
		i   int
	)
	for i = range box {
		box[i] = Bounds{Lo: 0, Hi: inf}
	}

	return box
}
