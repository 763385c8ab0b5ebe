// Package model - core types and sentinel errors.
package model

import (
	"errors"

	"github.com/katalvlaran/milp/ip"
)

// Sentinel errors for program assembly.
var (
	// ErrUnknownRelation indicates a relation string other than "<=", "=", ">=".
	ErrUnknownRelation = errors.New("model: unknown relation, want \"<=\", \"=\" or \">=\"")
)

// Term is one "coefficient × named variable" summand.
type Term struct {
	Coef float64
	Name string
}

// Solution is the solver outcome translated back to names.
type Solution struct {
	// Status classifies the program.
	Status ip.Status

	// Extremum is the optimal objective value in the program's sense
	// (±Inf when Unbounded or Infeasible, see ip.Result).
	Extremum float64

	// Assignment maps every variable name to its integer value when
	// Status == ip.Bounded; nil otherwise.
	Assignment map[string]int64

	// NodesSolved counts LP relaxations solved during the search.
	NodesSolved int
}
