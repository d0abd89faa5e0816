// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted graph given as a dense adjacency matrix: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V (i.e., spans the graph) and the sum of weights of edges in T is minimized.
//
//   - Representation:
//     The graph is an n×n matrix.Matrix where entry (i, j) = (j, i) is the weight of edge i–j and 0 means
//     "no edge". The result is a new n×n *matrix.Dense holding only the n-1 tree edges, weights copied in.
//
// Algorithms Provided
//
//   - Prim(g matrix.Matrix, opts ...Option) (*matrix.Dense, error)
//
//   - Strategy: Grow a single tree from a fixed root (vertex 0 unless WithRoot). The frontier is a
//     min-heap of (weight, from, to) entries. Entries are pushed when a vertex joins the tree and are
//     never removed early: an entry whose target already joined is discarded when popped (lazy deletion),
//     which replaces a decrease-key operation.
//
//   - Complexity: O(n² log n) time, O(n²) frontier memory on dense input.
//
//   - PrimStats returns the same tree together with push/pop/stale counters.
//
//   - Kruskal(g matrix.Matrix, opts ...Option) (*matrix.Dense, error)
//
//   - Strategy: Sort upper-triangle edges by weight (stable, row-major order for ties), then join
//     components with a disjoint-set forest, skipping edges whose endpoints are already connected.
//
//   - Complexity: O(n² log n) time, O(n²) memory.
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodPrim | MethodKruskal).
//
// Determinism
//
//	Prim breaks weight ties by (from, to) index and Kruskal by row-major edge order, so both return
//	bitwise-identical matrices on repeated runs. When several MSTs exist the two algorithms may pick
//	different edges; the total weight is always the same.
//
// Error Conditions
//
//	- matrix.ErrInvalidInput
//	    - input is nil, non-square, non-finite, negative, has a non-zero diagonal or is asymmetric.
//	      The specific matrix sentinel (ErrNonSquare, ErrAsymmetry, ...) is wrapped as well.
//
//	- ErrRootOutOfRange (Prim only)
//	    - WithRoot names a vertex outside [0, n).
//
//	- ErrDisconnected
//	    - n > 1 and some vertex cannot be reached. No partial tree is returned.
//
//	- ErrUnknownMethod (Compute only)
//
// Helpers
//
//	TreeEdges(tree) lists the tree as []Edge (From < To, row-major order); TotalWeight(tree) sums it.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
