// SPDX-License-Identifier: MIT

// Package tableau - dense storage (row-major) and the simplex row primitives.
//
// Purpose:
//   - Cache-friendly flat buffer with the explicit index formula i*cols + j.
//   - Safety at the constructor; unchecked O(1) accessors on the hot path
//     (every index reaching At/Set is produced by the lp driver loops,
//     which iterate 0..rows/0..cols only).
//   - Deterministic serial elimination; optional row-parallel path.
package tableau

import (
	"fmt"
	"strings"
)

// Tableau is a dense row-major simplex tableau plus basis bookkeeping.
type Tableau struct {
	rows int       // row count, including the reduced-cost row 0
	cols int       // column count, including the rhs column
	cell []float64 // flat backing storage, length rows*cols

	// Base[i] is the basic column of constraint row i (Base[0] is unused;
	// row 0 carries no basis). ArtificialBase marks an artificial basis.
	Base []int

	opt Options
}

// New allocates a zero-filled rows×cols tableau with a basis vector of
// length rows. Returns ErrInvalidDimensions for non-positive shapes.
//
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int, opt Options) (*Tableau, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Tableau{
		rows: rows,
		cols: cols,
		cell: make([]float64, rows*cols),
		Base: make([]int, rows),
		opt:  opt,
	}, nil
}

// Rows returns the row count (constraint rows + the reduced-cost row).
func (t *Tableau) Rows() int { return t.rows }

// Cols returns the column count (variables + slacks + the rhs column).
func (t *Tableau) Cols() int { return t.cols }

// RHSCol returns the index of the right-hand-side column.
func (t *Tableau) RHSCol() int { return t.cols - 1 }

// At reads the entry at (i, j). Bounds are the caller's contract.
func (t *Tableau) At(i, j int) float64 { return t.cell[i*t.cols+j] }

// Set writes the entry at (i, j). Bounds are the caller's contract.
func (t *Tableau) Set(i, j int, v float64) { t.cell[i*t.cols+j] = v }

// row returns the backing slice of row i (len == cols, no copy).
func (t *Tableau) row(i int) []float64 {
	return t.cell[i*t.cols : (i+1)*t.cols]
}

// ScaleRow divides every entry of row i by s.
//
// Complexity: O(cols).
func (t *Tableau) ScaleRow(i int, s float64) {
	var (
		ri = t.row(i)
		k  int
	)
	for k = range ri {
		ri[k] /= s
	}
}

// AddRowToRow performs row[dst] += k·row[src] for dst ≠ src.
//
// Complexity: O(cols).
func (t *Tableau) AddRowToRow(src, dst int, k float64) {
	var (
		rs = t.row(src)
		rd = t.row(dst)
		c  int
	)
	for c = range rd {
		rd[c] += rs[c] * k
	}
}

// Eliminate pivots on A[i,j]: every other row k gets (A[k,j]/A[i,j])·row i
// subtracted so that column j vanishes there, the vacated entries are set
// to exactly zero (not merely within tolerance), and finally row i is
// divided by A[i,j] so that A[i,j] == 1. Column j ends as a unit vector
// with its 1 at row i.
//
// The pivot value A[i,j] must be non-zero; the lp driver guarantees this
// via its strict-positivity ratio test.
//
// Complexity: O(rows·cols) serial; the parallel path splits the row loop
// across Options.Workers goroutines.
func (t *Tableau) Eliminate(i, j int) {
	if t.opt.ParallelEliminate {
		t.eliminateParallel(i, j)

		return
	}

	var (
		piv = t.At(i, j)
		k   int
	)

	// Stage 1: clear column j in every other row.
	for k = 0; k < t.rows; k++ {
		if k != i {
			t.AddRowToRow(i, k, -t.At(k, j)/piv)
		}
	}
	// Stage 2: force exact zeros in the cleared column. The row update
	// above leaves residues on the order of the rounding error; downstream
	// unit-column invariants want literal zeros.
	for k = 0; k < t.rows; k++ {
		if k != i {
			t.Set(k, j, 0)
		}
	}
	// Stage 3: normalize the pivot row.
	t.ScaleRow(i, piv)
}

// String renders the tableau with basic-variable annotations, one row per
// line. Intended for debugging and failure messages only.
func (t *Tableau) String() string {
	var (
		b strings.Builder
		i int
		j int
	)
	for i = 0; i < t.rows; i++ {
		for j = 0; j < t.cols; j++ {
			fmt.Fprintf(&b, "%8.3f ", t.At(i, j))
		}
		if i > 0 {
			fmt.Fprintf(&b, "| base=%d", t.Base[i])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
