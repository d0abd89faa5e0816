// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted adjacency matrix and produces the MST in the same representation.
package prim_kruskal

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmst/matrix"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - matrix.ErrInvalidInput : graph fails matrix.ValidateWeightedGraph.
//   - ErrDisconnected        : fewer than n-1 edges could be joined.
//
// Steps:
//  1. Validate the matrix.
//  2. Collect edges (i, j, w) with i < j and w > 0 in row-major order.
//  3. Sort edges by ascending weight (sort.SliceStable keeps row-major order for equal weights).
//  4. Loop over sorted edges: if find(i) != find(j), union them and include the edge.
//  5. Once the tree has n-1 edges, stop. Fewer after the loop → ErrDisconnected.
//
// Complexity: O(n² log n) for the sort over up to n(n-1)/2 edges. Memory: O(n²).
func Kruskal(graph matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	// 1. Validate.
	if err := matrix.ValidateWeightedGraph(graph, matrix.WithEpsilon(o.Epsilon)); err != nil {
		return nil, fmt.Errorf("prim_kruskal: Kruskal: %w", err)
	}
	n := graph.Rows()
	tree, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		// Single vertex: the empty tree.
		return tree, nil
	}

	// 2. Upper-triangle edges; the lower triangle mirrors it.
	edges := make([]Edge, 0, n)
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, _ = graph.At(i, j)
			if w > 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	// 3. Stable sort keeps tie-breaking deterministic.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4. Join components.
	ds := newDisjointSet(n)
	joined := 0
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue // would close a cycle
		}
		if err = setSymmetric(tree, e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		joined++
		if joined == n-1 {
			break
		}
	}

	// 5. A spanning tree has exactly n-1 edges.
	if joined < n-1 {
		return nil, fmt.Errorf("prim_kruskal: Kruskal: %d components remain: %w", n-joined, ErrDisconnected)
	}

	o.Logger.Debug("kruskal: tree complete",
		zap.Int("vertices", n),
		zap.Int("candidates", len(edges)))

	return tree, nil
}

// disjointSet is a union-find forest over vertex indices [0, n).
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) disjointSet {
	ds := disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for v := range ds.parent {
		ds.parent[v] = v
	}

	return ds
}

// find returns the root of v, halving the path on the way up.
func (ds disjointSet) find(v int) int {
	for ds.parent[v] != v {
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// union merges the sets of u and v by rank.
// Returns false if they were already in the same set.
func (ds disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
