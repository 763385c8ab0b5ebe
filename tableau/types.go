// Package tableau - core types, options, and sentinel errors.
package tableau

import (
	"errors"
	"runtime"
)

// Sentinel errors for tableau construction and row operations.
var (
	// ErrInvalidDimensions indicates non-positive row or column counts.
	ErrInvalidDimensions = errors.New("tableau: dimensions must be > 0")
	// ErrRowOutOfRange indicates a row index outside [0, rows).
	ErrRowOutOfRange = errors.New("tableau: row index out of range")
	// ErrColOutOfRange indicates a column index outside [0, cols).
	ErrColOutOfRange = errors.New("tableau: column index out of range")
)

// ArtificialBase marks a constraint row whose current basis is an
// artificial variable. Artificial columns are emulated, not stored.
const ArtificialBase = -1

// Options configures a Tableau at construction time.
type Options struct {
	// ParallelEliminate enables the row-parallel elimination path.
	// Elimination is nested inside LP solves; callers running many LP
	// solves concurrently (parallel Branch-and-Bound) should leave this
	// off so the product of worker counts does not oversubscribe cores.
	ParallelEliminate bool

	// Workers bounds the fan-out width of the parallel path.
	// Values ≤ 0 select runtime.NumCPU().
	Workers int
}

// DefaultOptions returns the serial configuration.
func DefaultOptions() Options {
	return Options{ParallelEliminate: false, Workers: 0}
}

// workers resolves the effective fan-out width.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.NumCPU()
}
