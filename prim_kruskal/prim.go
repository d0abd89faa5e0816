// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted adjacency matrix and grows the MST from a fixed root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvmst/matrix"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// given as an n×n adjacency matrix (0 = no edge) and returns the tree as a new
// n×n adjacency matrix holding exactly the selected edges with their weights.
//
// Error Conditions:
//   - matrix.ErrInvalidInput : graph fails matrix.ValidateWeightedGraph (the specific sentinel is wrapped too).
//   - ErrRootOutOfRange      : WithRoot names a vertex outside [0, n).
//   - ErrDisconnected        : the frontier runs dry before every vertex is in the tree.
//
// Steps:
//  1. Validate the matrix; the input is only read, never written.
//  2. Initialize the inclusion set (all false), the result (all zero) and the
//     frontier with the sentinel entry (0, root, root).
//  3. While some vertex is outside the tree:
//     a. Pop the smallest (weight, from, to) entry; an empty frontier means disconnected.
//     b. If to is already in the tree, drop the entry (lazy deletion) and continue.
//     c. Otherwise mark to as included and write weight at (from,to) and (to,from).
//     d. Push (w(to,t), to, t) for every t outside the tree with w(to,t) > 0,
//        even if t already has a pending entry.
//  4. Return the result.
//
// Ties are broken by the frontier order (weight, from, to), so repeated runs on
// the same input produce bitwise-identical results.
//
// Complexity: O(n² log n) time (up to n² entries pushed and popped), O(n²) memory.
func Prim(graph matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	tree, _, err := PrimStats(graph, opts...)

	return tree, err
}

// PrimStats is Prim that additionally reports frontier counters for the run.
// Stats are filled even when ErrDisconnected is returned.
func PrimStats(graph matrix.Matrix, opts ...Option) (*matrix.Dense, Stats, error) {
	o := gatherOptions(opts...)
	var stats Stats

	// 1. Validate before any algorithmic work.
	if err := matrix.ValidateWeightedGraph(graph, matrix.WithEpsilon(o.Epsilon)); err != nil {
		return nil, stats, fmt.Errorf("prim_kruskal: Prim: %w", err)
	}
	n := graph.Rows()
	if o.Root < 0 || o.Root >= n {
		return nil, stats, fmt.Errorf("prim_kruskal: Prim: root %d, %d vertices: %w", o.Root, n, ErrRootOutOfRange)
	}

	// 2. Inclusion set, result matrix and the sentinel frontier entry.
	inTree := make([]bool, n)
	tree, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, stats, err
	}
	pq := &edgePQ{{weight: 0, from: o.Root, to: o.Root}}
	heap.Init(pq)
	stats.Pushes = 1

	// 3. Main loop: one effective pop per vertex.
	var (
		included int
		e        frontierEdge
		w        float64
		t        int
	)
	for included < n {
		if pq.Len() == 0 {
			return nil, stats, fmt.Errorf("prim_kruskal: Prim: reached %d of %d vertices from root %d: %w",
				included, n, o.Root, ErrDisconnected)
		}

		// 3a. Smallest candidate edge.
		e = heap.Pop(pq).(frontierEdge)
		stats.Pops++

		// 3b. Stale entry: target joined the tree through a cheaper edge.
		if inTree[e.to] {
			stats.Stale++
			continue
		}

		// 3c. Accept the edge. The sentinel (root, root) only marks the root.
		inTree[e.to] = true
		included++
		if e.from != e.to {
			if err = setSymmetric(tree, e.from, e.to, e.weight); err != nil {
				return nil, stats, err
			}
			if ce := o.Logger.Check(zapcore.DebugLevel, "prim: edge accepted"); ce != nil {
				ce.Write(zap.Int("from", e.from), zap.Int("to", e.to), zap.Float64("weight", e.weight))
			}
		}

		// 3d. Expand the frontier from the new vertex.
		for t = 0; t < n; t++ {
			if inTree[t] {
				continue
			}
			w, _ = graph.At(e.to, t) // in range after validation
			if w > 0 {
				heap.Push(pq, frontierEdge{weight: w, from: e.to, to: t})
				stats.Pushes++
			}
		}
	}

	o.Logger.Debug("prim: tree complete",
		zap.Int("vertices", n),
		zap.Int("root", o.Root),
		zap.Int("pushes", stats.Pushes),
		zap.Int("pops", stats.Pops),
		zap.Int("stale", stats.Stale))

	// 4. Done.
	return tree, stats, nil
}

// setSymmetric writes w at (u,v) and (v,u).
func setSymmetric(m *matrix.Dense, u, v int, w float64) error {
	if err := m.Set(u, v, w); err != nil {
		return err
	}

	return m.Set(v, u, w)
}
