// SPDX-License-Identifier: MIT

// Package tableau - row-parallel pivot elimination.
//
// Serial elimination touches each non-pivot row independently:
// row k only ever reads row i and mutates itself. That makes the row loop
// embarrassingly parallel, so the accelerated path fans the rows out over
// a bounded set of goroutines in contiguous chunks. The pivot row is
// normalized after the fan-out completes, exactly as in the serial path,
// so every worker computes its ratio against the unscaled row i.
package tableau

import "sync"

// eliminateParallel is the fan-out counterpart of Eliminate's serial body.
// Per-row arithmetic is identical to the serial path (subtract, then force
// an exact zero in the pivot column); only the order in which rows are
// processed differs, so results agree with the serial path to rounding
// error on each entry.
func (t *Tableau) eliminateParallel(i, j int) {
	var (
		workers = t.opt.workers()
		piv     = t.At(i, j)
		ri      = t.row(i)
	)
	if workers > t.rows {
		workers = t.rows
	}

	// Chunked fan-out: worker w owns rows [w*chunk, min((w+1)*chunk, rows)).
	var (
		chunk = (t.rows + workers - 1) / workers
		wg    sync.WaitGroup
		w     int
	)
	for w = 0; w < workers; w++ {
		var lo, hi = w * chunk, (w + 1) * chunk
		if hi > t.rows {
			hi = t.rows
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			var (
				k     int
				c     int
				rk    []float64
				ratio float64
			)
			for k = lo; k < hi; k++ {
				if k == i {
					continue
				}
				rk = t.row(k)
				ratio = rk[j] / piv
				for c = range rk {
					rk[c] -= ri[c] * ratio
				}
				rk[j] = 0
			}
		}(lo, hi)
	}
	wg.Wait()

	// Normalize the pivot row once all subtractions are done.
	t.ScaleRow(i, piv)
}
