package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmst/matrix"
	"github.com/katalvlaran/lvmst/prim_kruskal"
)

// mustGraph builds a validated weighted graph or fails the test.
func mustGraph(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	g, err := matrix.NewWeightedGraph(rows)
	require.NoError(t, err)

	return g
}

// buildTriangle returns the undirected, weighted triangle graph:
//
//	0-1 (weight 1), 1-2 (weight 2), 0-2 (weight 3).
//
// This graph’s MST consists of edges 0-1 and 1-2 with total weight 3.
func buildTriangle() [][]float64 {
	return [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}
}

// buildRandomGraph creates a connected, weighted n-vertex graph.
//   - A chain 0-1-...-(n-1) with weights in [1..10] guarantees connectivity.
//   - Every other pair gets an edge with probability density, weights in [1..100].
//   - integer=true draws whole-number weights so ties are frequent.
//
// The generator is seeded, so the same arguments always give the same graph.
func buildRandomGraph(n int, density float64, integer bool, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	weight := func(hi int) float64 {
		if integer {
			return float64(1 + r.Intn(hi))
		}
		return 1.0 + r.Float64()*float64(hi-1)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 1; i < n; i++ {
		w := weight(10)
		rows[i-1][i], rows[i][i-1] = w, w
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if r.Float64() < density {
				w := weight(100)
				rows[i][j], rows[j][i] = w, w
			}
		}
	}

	return rows
}

// unionFind is a minimal test-side disjoint set, independent of the package's own.
type unionFind []int

func newUnionFind(n int) unionFind {
	uf := make(unionFind, n)
	for i := range uf {
		uf[i] = i
	}
	return uf
}

func (uf unionFind) find(x int) int {
	for uf[x] != x {
		x = uf[x]
	}
	return x
}

func (uf unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	uf[ra] = rb
	return true
}

// requireSpanningTree asserts every structural property of an MST result:
// same shape, symmetric, zero diagonal, n-1 edges, each edge present in the
// input with the same weight, acyclic and connected.
func requireSpanningTree(t *testing.T, g [][]float64, tree *matrix.Dense) {
	t.Helper()
	n := len(g)
	require.NotNil(t, tree)
	require.Equal(t, n, tree.Rows())
	require.Equal(t, n, tree.Cols())

	rows := tree.ToRows()
	for i := 0; i < n; i++ {
		require.Zerof(t, rows[i][i], "diagonal (%d,%d)", i, i)
		for j := 0; j < n; j++ {
			require.Equalf(t, rows[i][j], rows[j][i], "symmetry (%d,%d)", i, j)
			if rows[i][j] != 0 {
				require.Equalf(t, g[i][j], rows[i][j], "tree edge (%d,%d) must copy the input weight", i, j)
			}
		}
	}

	edges := prim_kruskal.TreeEdges(tree)
	require.Len(t, edges, n-1)
	uf := newUnionFind(n)
	for _, e := range edges {
		require.Truef(t, uf.union(e.From, e.To), "edge %v closes a cycle", e)
	}
	root := uf.find(0)
	for v := 1; v < n; v++ {
		require.Equalf(t, root, uf.find(v), "vertex %d not spanned", v)
	}
}

// bruteForceMSTWeight enumerates every (n-1)-subset of edges and returns the
// smallest weight among those forming a spanning tree. Exponential; n ≤ 6.
func bruteForceMSTWeight(g [][]float64) float64 {
	n := len(g)
	if n == 1 {
		return 0
	}
	var edges []prim_kruskal.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g[i][j] > 0 {
				edges = append(edges, prim_kruskal.Edge{From: i, To: j, Weight: g[i][j]})
			}
		}
	}

	best := -1.0
	chosen := make([]prim_kruskal.Edge, 0, n-1)
	var walk func(start int)
	walk = func(start int) {
		if len(chosen) == n-1 {
			uf := newUnionFind(n)
			var sum float64
			for _, e := range chosen {
				if !uf.union(e.From, e.To) {
					return
				}
				sum += e.Weight
			}
			if best < 0 || sum < best {
				best = sum
			}
			return
		}
		for k := start; k < len(edges); k++ {
			chosen = append(chosen, edges[k])
			walk(k + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	walk(0)

	return best
}

// TestPrim_Triangle ensures that Prim on the triangle graph picks the correct MST edges and weight.
func TestPrim_Triangle(t *testing.T) {
	g := mustGraph(t, buildTriangle())

	tree, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	requireSpanningTree(t, buildTriangle(), tree)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(tree))
	assert.Equal(t, []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
	}, prim_kruskal.TreeEdges(tree))
}

// TestKruskal_Triangle ensures that Kruskal on the triangle graph picks the same MST.
func TestKruskal_Triangle(t *testing.T) {
	g := mustGraph(t, buildTriangle())

	tree, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	requireSpanningTree(t, buildTriangle(), tree)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(tree))
}

// TestPrim_PathUniqueMST: a 5-vertex path with weights 1,2,3,4 has itself as the only spanning tree.
func TestPrim_PathUniqueMST(t *testing.T) {
	rows := [][]float64{
		{0, 1, 0, 0, 0},
		{1, 0, 2, 0, 0},
		{0, 2, 0, 3, 0},
		{0, 0, 3, 0, 4},
		{0, 0, 0, 4, 0},
	}
	g := mustGraph(t, rows)

	tree, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	require.True(t, g.Equal(tree), "the path must be returned unchanged:\n%s", tree)
	assert.Equal(t, 10.0, prim_kruskal.TotalWeight(tree))
}

// TestPrim_CompleteUniform: K4 with unit weights. Ties resolve by (from, to),
// so Prim from 0 yields the star centred on 0.
func TestPrim_CompleteUniform(t *testing.T) {
	rows := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	g := mustGraph(t, rows)

	tree, stats, err := prim_kruskal.PrimStats(g)
	require.NoError(t, err)
	requireSpanningTree(t, rows, tree)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(tree))
	assert.Equal(t, []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 0, To: 3, Weight: 1},
	}, prim_kruskal.TreeEdges(tree))
	// sentinel + 3 from vertex 0 + 2 from vertex 1 + 1 from vertex 2.
	assert.Equal(t, prim_kruskal.Stats{Pushes: 7, Pops: 4, Stale: 0}, stats)

	kt, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	requireSpanningTree(t, rows, kt)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(kt))
}

// TestSingleVertexGraph verifies that a 1×1 zero matrix maps to a 1×1 zero matrix.
func TestSingleVertexGraph(t *testing.T) {
	g := mustGraph(t, [][]float64{{0}})

	tree, stats, err := prim_kruskal.PrimStats(g)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, tree.ToRows())
	assert.Equal(t, prim_kruskal.Stats{Pushes: 1, Pops: 1}, stats)
	assert.Empty(t, prim_kruskal.TreeEdges(tree))

	kt, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, kt.ToRows())
}

// TestDisconnected: two components {0,1} and {2,3} are rejected by every entry point.
func TestDisconnected(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 5, 0, 0},
		{5, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 2, 0},
	})

	tree, stats, err := prim_kruskal.PrimStats(g)
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Equal(t, stats.Pops, stats.Pushes, "the frontier drained completely")

	_, err = prim_kruskal.Prim(g, prim_kruskal.WithRoot(3))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
		assert.ErrorIsf(t, err, prim_kruskal.ErrDisconnected, "method %s", method)
	}
}

// TestTwoIsolatedVertices: the all-zero 2×2 matrix has no edges at all.
func TestTwoIsolatedVertices(t *testing.T) {
	g := mustGraph(t, [][]float64{{0, 0}, {0, 0}})

	_, err := prim_kruskal.Prim(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestValidation_InvalidInput verifies both algorithms fail fast on malformed matrices.
func TestValidation_InvalidInput(t *testing.T) {
	loose := func(rows [][]float64) *matrix.Dense {
		m, err := matrix.NewDenseFrom(rows)
		require.NoError(t, err)
		return m
	}
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", loose([][]float64{{0, 1, 1}, {1, 0, 1}}), matrix.ErrNonSquare},
		{"asymmetric", loose([][]float64{{0, 1}, {4, 0}}), matrix.ErrAsymmetry},
		{"negative", loose([][]float64{{0, -2}, {-2, 0}}), matrix.ErrNegativeWeight},
		{"self-loop", loose([][]float64{{1, 2}, {2, 0}}), matrix.ErrNonZeroDiagonal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := prim_kruskal.Prim(tc.m)
			assert.ErrorIs(t, err, matrix.ErrInvalidInput)
			assert.ErrorIs(t, err, tc.want)

			_, err = prim_kruskal.Kruskal(tc.m)
			assert.ErrorIs(t, err, matrix.ErrInvalidInput)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidation_Epsilon: a tiny asymmetry passes once the tolerance allows it.
func TestValidation_Epsilon(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1.0001, 0}})
	require.NoError(t, err)

	_, err = prim_kruskal.Prim(m)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	tree, err := prim_kruskal.Prim(m, prim_kruskal.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.Len(t, prim_kruskal.TreeEdges(tree), 1)

	assert.Panics(t, func() { prim_kruskal.WithEpsilon(-1) })
	assert.Panics(t, func() { prim_kruskal.WithEpsilon(math.NaN()) })
	assert.NotPanics(t, func() { prim_kruskal.WithEpsilon(0) })
}

// TestPrim_Root verifies root handling: out-of-range roots fail, any valid root gives the MST weight.
func TestPrim_Root(t *testing.T) {
	rows := buildRandomGraph(8, 0.6, false, 7)
	g := mustGraph(t, rows)

	for _, bad := range []int{-1, 8} {
		_, err := prim_kruskal.Prim(g, prim_kruskal.WithRoot(bad))
		assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
	}

	ref, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	for root := 0; root < len(rows); root++ {
		tree, err := prim_kruskal.Prim(g, prim_kruskal.WithRoot(root))
		require.NoError(t, err)
		requireSpanningTree(t, rows, tree)
		assert.InDelta(t, prim_kruskal.TotalWeight(ref), prim_kruskal.TotalWeight(tree), 1e-9)
	}
}

// TestPrim_DoesNotMutateInput verifies the builder only reads the graph.
func TestPrim_DoesNotMutateInput(t *testing.T) {
	rows := buildRandomGraph(10, 0.5, true, 3)
	g := mustGraph(t, rows)
	before := g.Clone().(*matrix.Dense)

	_, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.True(t, before.Equal(g))
}

// TestPrim_Deterministic: repeated runs on tie-heavy input are bitwise identical.
func TestPrim_Deterministic(t *testing.T) {
	g := mustGraph(t, buildRandomGraph(30, 0.7, true, 11))

	first, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := prim_kruskal.Prim(g)
		require.NoError(t, err)
		require.True(t, first.Equal(again), "run %d differs", i)
	}

	k1, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	k2, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	require.True(t, k1.Equal(k2))
}

// TestPrim_AgainstBruteForce checks optimality and structure on many small graphs.
func TestPrim_AgainstBruteForce(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for seed := int64(0); seed < 15; seed++ {
			rows := buildRandomGraph(n, 0.5, seed%2 == 0, seed)
			g := mustGraph(t, rows)
			want := bruteForceMSTWeight(rows)

			tree, stats, err := prim_kruskal.PrimStats(g)
			require.NoError(t, err)
			requireSpanningTree(t, rows, tree)
			assert.InDeltaf(t, want, prim_kruskal.TotalWeight(tree), 1e-9, "prim n=%d seed=%d", n, seed)
			assert.Equal(t, n, stats.Pops-stats.Stale)
			assert.LessOrEqual(t, stats.Pops, stats.Pushes)

			kt, err := prim_kruskal.Kruskal(g)
			require.NoError(t, err)
			requireSpanningTree(t, rows, kt)
			assert.InDeltaf(t, want, prim_kruskal.TotalWeight(kt), 1e-9, "kruskal n=%d seed=%d", n, seed)
		}
	}
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on larger generated graphs.
func TestComparison_MediumGraph(t *testing.T) {
	const tolerance = 1e-9
	for _, density := range []float64{0.05, 0.3, 1} {
		rows := buildRandomGraph(60, density, false, 42)
		g := mustGraph(t, rows)

		pt, stats, err := prim_kruskal.PrimStats(g)
		require.NoError(t, err)
		requireSpanningTree(t, rows, pt)
		assert.LessOrEqual(t, stats.Pops, stats.Pushes)
		assert.LessOrEqual(t, stats.Pushes, 1+60*59)

		kt, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		requireSpanningTree(t, rows, kt)

		assert.InDelta(t, prim_kruskal.TotalWeight(kt), prim_kruskal.TotalWeight(pt), tolerance)
	}
}

// TestCompute verifies the dispatcher.
func TestCompute(t *testing.T) {
	g := mustGraph(t, buildTriangle())

	def, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	prim, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.True(t, def.Equal(prim), "Prim is the default method")

	kt, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(kt))

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestTreeEdges_Nil verifies the helpers tolerate nil results.
func TestTreeEdges_Nil(t *testing.T) {
	assert.Nil(t, prim_kruskal.TreeEdges(nil))
	assert.Nil(t, prim_kruskal.TreeEdges((*matrix.Dense)(nil)))
	assert.Zero(t, prim_kruskal.TotalWeight(nil))
	assert.Equal(t, "0-2(1.5)", prim_kruskal.Edge{From: 0, To: 2, Weight: 1.5}.String())
}

// TestDefaultOptions documents the defaults.
func TestDefaultOptions(t *testing.T) {
	o := prim_kruskal.DefaultOptions()
	assert.Equal(t, prim_kruskal.MethodPrim, o.Method)
	assert.Equal(t, prim_kruskal.DefaultRoot, o.Root)
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon)
	assert.NotNil(t, o.Logger)
}
