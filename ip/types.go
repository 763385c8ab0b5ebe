// Package ip - core types, options, and sentinel errors.
package ip

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/milp/eps"
	"github.com/katalvlaran/milp/lp"
)

// Sentinel errors for search configuration. Problem-shape errors come
// from lp.Validate and keep their lp sentinels.
var (
	// ErrBadIntTol indicates a negative integrality tolerance.
	ErrBadIntTol = errors.New("ip: integrality tolerance must be non-negative")
	// ErrBadVarCount indicates a non-positive variable count.
	ErrBadVarCount = errors.New("ip: variable count must be > 0")
)

// Status classifies a finished Branch-and-Bound search.
type Status int

const (
	// Bounded means an optimal integer solution was found.
	Bounded Status = iota
	// Infeasible means no integer point satisfies the constraints.
	Infeasible
	// Unbounded means some relaxation diverges; the search was aborted.
	Unbounded
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

// Result is the outcome of one Branch-and-Bound search.
type Result struct {
	// Status classifies the problem.
	Status Status

	// Solution holds the incumbent variable values when Status == Bounded
	// (integral within the configured tolerance), nil otherwise.
	Solution []float64

	// Extremum is the optimal objective value in the caller's sense:
	// finite for Bounded, ±Inf (by sense) for Unbounded, and the
	// never-improved incumbent bound (±Inf) for Infeasible.
	Extremum float64

	// NodesSolved counts LP relaxations solved, the root included.
	NodesSolved int
}

// Options configures one search. The zero value selects the sequential
// driver with default tolerances.
type Options struct {
	// Workers selects the driver: 0 or 1 sequential, > 1 a pool of exactly
	// that many node-expansion workers, < 0 a pool sized by NumCPU.
	Workers int

	// ParallelPivots enables row-parallel tableau elimination inside each
	// LP solve. Do not combine with a worker pool: the useful budget is
	// B&B workers × elimination workers ≈ NumCPU, and node-level
	// parallelism wins on these instance sizes.
	ParallelPivots bool

	// PivotWorkers bounds the elimination fan-out; ≤ 0 means NumCPU.
	PivotWorkers int

	// PivotTol is the simplex strict-positivity threshold (0 → eps.PivotTol).
	PivotTol float64

	// IntTol is the integrality tolerance (0 → eps.IntTol).
	IntTol float64
}

// DefaultOptions returns the sequential configuration with the package
// default tolerances.
func DefaultOptions() Options {
	return Options{Workers: 1, PivotTol: eps.PivotTol, IntTol: eps.IntTol}
}

// intTol resolves the effective integrality tolerance.
func (o Options) intTol() float64 {
	if o.IntTol > 0 {
		return o.IntTol
	}

	return eps.IntTol
}

// workers resolves the effective driver width (1 means sequential).
func (o Options) workers() int {
	if o.Workers < 0 {
		return runtime.NumCPU()
	}
	if o.Workers == 0 {
		return 1
	}

	return o.Workers
}

// lpOptions maps search options onto per-node LP options.
func (o Options) lpOptions() lp.Options {
	return lp.Options{
		PivotTol:       o.PivotTol,
		ParallelPivots: o.ParallelPivots,
		PivotWorkers:   o.PivotWorkers,
	}
}

// validate rejects meaningless configurations. The pivot tolerance check
// reuses the lp sentinel so callers handle one error either way.
func (o Options) validate() error {
	if o.IntTol < 0 {
		return ErrBadIntTol
	}
	if o.PivotTol < 0 {
		return lp.ErrBadPivotTol
	}

	return nil
}
