package expander

import "container/heap"

// item is one priority-queue entry: lower priority pops first; among equal
// priorities, lower seq (earlier insertion) pops first (FIFO tie-break).
type item struct {
	priority float64
	seq      int
	nodeID   string
}

// minHeap is a container/heap.Interface over item, ordered by (priority, seq) asc.
type minHeap []item

func (h minHeap) Len() int { return len(h) }
func (h minHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) {
	*h = append(*h, x.(item))
}
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

var _ heap.Interface = (*minHeap)(nil)
