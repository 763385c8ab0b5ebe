// SPDX-License-Identifier: MIT

// Package ip - the worker-pool driver.
//
// Coordination contract (matches the sequential semantics):
//   - One mutex guards the node heap, the incumbent, the in-flight
//     counter, and the status flag. Everything else a worker touches is
//     immutable or worker-local.
//   - Child LP solves run entirely outside the mutex.
//   - A pop may race with an incumbent update, so every pop re-validates
//     the node's bound against the current upper bound and discards stale
//     nodes inline.
//   - Termination: heap empty AND no worker in flight (a worker in flight
//     may still push children, so an empty heap alone proves nothing).
//   - The incumbent bound only ever decreases, so exploration order is
//     nondeterministic but the final extremum is not.
package ip

import "sync"

// runParallel expands nodes with a pool of w workers. The engine state is
// the one the sequential driver uses; only the locking discipline differs.
func (e *engine) runParallel(w int) error {
	var (
		mu       sync.Mutex
		cond     = sync.NewCond(&mu)
		wg       sync.WaitGroup
		inflight int
		firstErr error
		drained  bool // heap empty with nothing in flight: search is over
	)

	var worker = func() {
		defer wg.Done()
		for {
			// Region 1: claim a live node or decide to retire.
			mu.Lock()
			var nd *node
			for {
				if e.status == Unbounded || firstErr != nil || drained {
					mu.Unlock()

					return
				}
				if nd = e.popViable(); nd != nil {
					break
				}
				if inflight == 0 {
					drained = true
					cond.Broadcast()
					mu.Unlock()

					return
				}
				cond.Wait()
			}
			inflight++
			mu.Unlock()

			// Both child relaxations are solved lock-free.
			left, lerr := e.newNode(nd.left)
			right, rerr := e.newNode(nd.right)

			// Region 2: publish the children and retire the claim.
			mu.Lock()
			if lerr != nil || rerr != nil {
				if firstErr == nil {
					firstErr = lerr
					if firstErr == nil {
						firstErr = rerr
					}
				}
			} else {
				e.checkNode(left)
				e.checkNode(right)
			}
			inflight--
			cond.Broadcast()
			mu.Unlock()
		}
	}

	wg.Add(w)
	var i int
	for i = 0; i < w; i++ {
		go worker()
	}
	wg.Wait()

	return firstErr
}

// popViable pops until it finds a node whose bound still beats the
// incumbent, discarding dominated nodes inline. Returns nil when the heap
// runs dry. Caller holds the engine mutex.
func (e *engine) popViable() *node {
	for e.open.Len() > 0 {
		if nd := e.popNode(); nd.bound < e.upper {
			return nd
		}
	}

	return nil
}
