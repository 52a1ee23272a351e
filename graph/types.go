// Package graph defines the Graph, Vertex, and Edge types shared by pattern
// graphs, host graphs, and spasm basis graphs, plus thread-safe primitives
// for building, querying, and cloning them.
//
// A Graph is directed or undirected for its whole lifetime. Self-loops are
// never permitted: PACT's host graphs and basis graphs are loop-free by
// construction (see spec §3), so AddEdge rejects From == To outright rather
// than offering an opt-in like general-purpose graph libraries do.
//
// All mutation and query methods lock internally (muVert for vertices,
// muEdgeAdj for edges/adjacency), so a *Graph may be read concurrently by
// multiple plan executions and basis computations.
package graph

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates an attempted self-loop; hosts and basis
	// graphs are assumed loop-free throughout PACT (spec §3).
	ErrLoopNotAllowed = errors.New("graph: self-loops are not allowed")

	// ErrMultiEdgeNotAllowed indicates an attempted parallel edge on a
	// Graph that was not constructed with WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("graph: parallel edges not allowed")
)

// Vertex is a node in a Graph. Labels carries the set of label tokens used
// by the plan compiler's optional vertex-label restriction (spec §4.E).
type Vertex struct {
	ID     string
	Labels []string
}

// Edge is a connection between two vertices. For directed graphs, From is
// the source and To is the target; for undirected graphs the pair is
// unordered but always stored once, with symmetric queries handled by the
// adjacency methods rather than by storing both directions.
type Edge struct {
	ID   string
	From string
	To   string
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithDirected sets the graph's directedness. Undirected is the default.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory representation of a pattern, host, or basis graph.
//
// Shape is a cache: New leaves it zero and no mutation recomputes it;
// callers that build a Graph via AddVertex/AddEdge and then need Shape
// flags call RecomputeShape explicitly. This mirrors spec §3's requirement that
// shape flags are fast-path caches, never a substitute for correctness.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	allowMulti bool

	id uuid.UUID // stable content-free identifier, spec §3

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[from][to][edgeID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}

	shape Shape
}

// Shape caches cheap structural predicates used as fast paths and cache
// keys (spec §3). They are never authoritative for correctness checks.
type Shape struct {
	IsStar      bool // true iff the graph is a star; StarDegree holds the leaf count
	StarDegree  int
	IsCycle     bool
	IsBiclique  bool // small complete bipartite K_{n,m}, n,m <= 3
	BicliqueN   int
	BicliqueM   int
	IsClique    bool
	CliqueSize  int
}

// New creates an empty Graph with the given options. By default the graph
// is undirected and disallows parallel edges.
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
		id:        newID(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func newID() uuid.UUID { return uuid.New() }

// ID returns the graph's stable, content-free identifier.
func (g *Graph) ID() uuid.UUID { return g.id }

// Directed reports whether this graph's edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// MultiEdges reports whether parallel edges are permitted.
func (g *Graph) MultiEdges() bool { return g.allowMulti }

// Shape returns the cached structural flags set by the last call to
// RecomputeShape (all zero on a new Graph until then).
func (g *Graph) Shape() Shape { return g.shape }
