package prim_kruskal

// frontierEdge is a candidate edge from a tree vertex to a vertex that was
// outside the tree when the entry was pushed.
type frontierEdge struct {
	weight float64
	from   int
	to     int
}

// edgePQ implements heap.Interface for a min‐heap of frontierEdge.
// Entries are ordered lexicographically by (weight, from, to), which is a
// total order, so pop order is fully determined by the pushed entries.
type edgePQ []frontierEdge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should pop before j.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new frontierEdge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

// Pop removes and returns the last element after heap adjustments. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
