// Package lp - solver configuration.
package lp

import (
	"github.com/katalvlaran/milp/eps"
	"github.com/katalvlaran/milp/tableau"
)

// Options configures one LP solve. The zero value selects all defaults.
type Options struct {
	// PivotTol is the strict-positivity threshold for entering-column
	// selection and the min-ratio test. 0 selects eps.PivotTol; negative
	// values are rejected.
	PivotTol float64

	// ParallelPivots enables the row-parallel elimination path of the
	// tableau. Leave off when LP solves themselves run concurrently
	// (parallel Branch-and-Bound) to keep the total goroutine budget at
	// roughly the core count.
	ParallelPivots bool

	// PivotWorkers bounds the elimination fan-out; ≤ 0 means NumCPU.
	PivotWorkers int
}

// DefaultOptions returns the serial configuration with eps.PivotTol.
func DefaultOptions() Options {
	return Options{PivotTol: eps.PivotTol}
}

// pivotTol resolves the effective tolerance.
func (o Options) pivotTol() float64 {
	if o.PivotTol > 0 {
		return o.PivotTol
	}

	return eps.PivotTol
}

// tableauOptions maps the LP options onto tableau construction options.
func (o Options) tableauOptions() tableau.Options {
	return tableau.Options{
		ParallelEliminate: o.ParallelPivots,
		Workers:           o.PivotWorkers,
	}
}

// validate rejects meaningless configurations.
func (o Options) validate() error {
	if o.PivotTol < 0 {
		return ErrBadPivotTol
	}

	return nil
}
