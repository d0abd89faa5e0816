// Package lvmst computes minimum spanning trees of undirected weighted graphs
// stored as dense adjacency matrices.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/       : Dense n×n weight matrices, validation, CSV load/store
//	prim_kruskal/ : Prim (lazy-deletion min-heap frontier) & Kruskal (union-find)
//	cmd/lvmst     : command-line front end (build, validate)
//
// Quick example:
//
//	    0───1        weights: 0–1 = 1, 1–2 = 2, 0–2 = 3
//	     \  │
//	      \ │        MST: {0–1, 1–2}, total 3
//	        2
//
//	g, _ := matrix.NewWeightedGraph([][]float64{{0, 1, 3}, {1, 0, 2}, {3, 2, 0}})
//	tree, _ := prim_kruskal.Prim(g)
//	fmt.Println(prim_kruskal.TotalWeight(tree)) // 3
//
//	go get github.com/katalvlaran/lvmst
package lvmst
