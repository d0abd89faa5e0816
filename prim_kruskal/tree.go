package prim_kruskal

import "github.com/katalvlaran/lvmst/matrix"

// TreeEdges lists the non-zero upper-triangle entries of an MST adjacency
// matrix in row-major order, so From < To for every edge.
// A nil tree yields nil.
//
// Complexity: O(n²).
func TreeEdges(tree matrix.Matrix) []Edge {
	if matrix.ValidateNotNil(tree) != nil {
		return nil
	}
	n := tree.Rows()
	edges := make([]Edge, 0, n)
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < tree.Cols(); j++ {
			w, _ = tree.At(i, j)
			if w != 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return edges
}

// TotalWeight sums the weights of TreeEdges(tree).
func TotalWeight(tree matrix.Matrix) float64 {
	var total float64
	for _, e := range TreeEdges(tree) {
		total += e.Weight
	}

	return total
}
