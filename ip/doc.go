// Package ip solves pure integer programs by best-first Branch-and-Bound
// over LP relaxations from package lp.
//
// Every variable is a non-negative integer; the root relaxation runs over
// the box [0, +Inf)ⁿ and branching tightens one variable's box at a time.
// Internally the search always minimizes (a Max objective is negated on
// entry and the extremum re-negated on exit), so the LP value of a node is
// a lower bound and the best integer solution found so far (the incumbent)
// is a global upper bound.
//
// Search policy, all deterministic in sequential mode:
//
//   - Best-first: the open node with the smallest LP bound is expanded
//     next (min-heap, insertion order breaks ties).
//   - Branching: the smallest-index variable with a fractional LP value is
//     split at s = floor(value) into [lo, s] and [s+1, hi] children.
//   - Pruning: a node whose LP bound is not strictly below the incumbent
//     upper bound is discarded; the bound can only tighten downward.
//   - An unbounded child LP aborts the whole search with Unbounded.
//
// Options.Workers selects the sequential driver (0 or 1) or a worker pool
// that expands nodes concurrently (> 1, or < 0 for NumCPU workers). The parallel driver shares only the
// node heap and the incumbent, both guarded by one mutex; LP solves run
// outside it. Parallel exploration order is nondeterministic, but the
// returned extremum is the same.
package ip
