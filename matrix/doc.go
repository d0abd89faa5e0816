// SPDX-License-Identifier: MIT

// Package matrix holds the dense weighted-graph representation used by the
// MST builders in prim_kruskal.
//
// What & Why:
//
//	An undirected weighted graph on n vertices is stored as an n×n matrix A
//	where A[i][j] = A[j][i] is the weight of edge i–j and 0 means "no edge".
//	The Matrix interface keeps algorithms independent of storage; Dense is a
//	row-major implementation with bounds-checked At/Set.
//
// Construction:
//
//	NewDense(r, c)            – zero matrix.
//	NewDenseFrom(rows)        – copy of a rectangular [][]float64.
//	NewWeightedGraph(rows)    – copy + ValidateWeightedGraph.
//	ReadCSV(r) / LoadCSV(p)   – comma-separated text, '#' comments allowed.
//	WriteCSV(w, m)            – the inverse of ReadCSV.
//
// Validation:
//
//	ValidateWeightedGraph runs NotNil → Square → Finite → NonNegative →
//	ZeroDiagonal → Symmetric(eps) and wraps every failure with
//	ErrInvalidInput, so callers fail fast before any algorithmic work.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1); Clone, Equal and every validator are O(n²).
package matrix
