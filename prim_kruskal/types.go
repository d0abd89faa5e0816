// Package prim_kruskal defines configuration options, result types and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmst/matrix"
)

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrRootOutOfRange indicates that the requested Prim start vertex is not a row of the matrix.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// DefaultRoot is the fixed start vertex used by Prim unless WithRoot says otherwise.
const DefaultRoot = 0

const panicEpsilonInvalid = "prim_kruskal: WithEpsilon: eps must be finite, non-negative"

// Edge is one undirected tree edge between matrix indices From and To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// String renders the edge as "from-to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.From, e.To, e.Weight)
}

// Stats counts frontier traffic of one Prim run.
//
// On success Pops-Stale equals the vertex count (the start sentinel counts as
// one effective pop) and Pops never exceeds Pushes.
type Stats struct {
	Pushes int // entries pushed, including the start sentinel
	Pops   int // entries popped
	Stale  int // popped entries whose target was already in the tree
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Prim from vertex 0).
//
// Fields:
//
//	Method  string      : one of MethodPrim or MethodKruskal.
//	Root    int         : start vertex index for Prim; ignored by Kruskal.
//	Epsilon float64     : symmetry/diagonal tolerance for input validation.
//	Logger  *zap.Logger : debug tracing; never nil after option resolution.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Epsilon is forwarded to matrix.ValidateWeightedGraph.
	Epsilon float64

	// Logger receives debug events; zap.NewNop() by default.
	Logger *zap.Logger
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithEpsilon sets the validation tolerance. Panics on NaN, ±Inf or negative eps,
// like matrix.WithEpsilon.
func WithEpsilon(eps float64) Option {
	if matrix.ValidateEpsilon(eps) != nil {
		panic(panicEpsilonInvalid)
	}

	return func(opts *MSTOptions) {
		opts.Epsilon = eps
	}
}

// WithLogger routes debug events to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(opts *MSTOptions) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Prim by default:
//
//	– Method  = MethodPrim
//	– Root    = DefaultRoot (vertex 0)
//	– Epsilon = matrix.DefaultEpsilon
//	– Logger  = zap.NewNop()
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:  MethodPrim,
		Root:    DefaultRoot,
		Epsilon: matrix.DefaultEpsilon,
		Logger:  zap.NewNop(),
	}
}

// gatherOptions applies opts on top of DefaultOptions, last writer wins.
func gatherOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodPrim:    calls Prim(graph, opts...).
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns the MST adjacency matrix (same shape as graph) or an error.
func Compute(graph matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	switch o.Method {
	case MethodPrim:
		return Prim(graph, opts...)
	case MethodKruskal:
		return Kruskal(graph, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
