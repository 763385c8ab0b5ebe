// Package ip - the open-node priority queue.
package ip

import "container/heap"

// nodeHeap is a min-heap on the LP bound with insertion-order tie-breaks,
// so equal-bound siblings are expanded in the order they were discovered
// and the sequential search stays deterministic.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].bound != h[j].bound {
		return h[i].bound < h[j].bound
	}

	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push implements heap.Interface; use engine push/pop helpers instead.
func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

// Pop implements heap.Interface.
func (h *nodeHeap) Pop() any {
	var (
		old = *h
		n   = len(old)
		nd  = old[n-1]
	)
	old[n-1] = nil // release the reference for GC
	*h = old[:n-1]

	return nd
}

// pushNode stamps the node and inserts it.
func (e *engine) pushNode(nd *node) {
	nd.seq = e.seq
	e.seq++
	heap.Push(&e.open, nd)
}

// popNode removes and returns the lowest-bound open node.
func (e *engine) popNode() *node {
	return heap.Pop(&e.open).(*node)
}
