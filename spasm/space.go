// Package spasm implements the content-addressed spasm-space registry and
// the homomorphism basis builder, ported from
// original_source/pact/pact/spasmspace.py and hombase.py.
package spasm

import (
	"bytes"
	"encoding/gob"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/quotientgraph/pact/canon"
	"github.com/quotientgraph/pact/graph"
)

// ID identifies a basis graph within a Space.
type ID string

type evKey struct {
	Edges, Vertices int
}

// Space is a content-addressed registry of basis graphs indexed by
// (|E|,|V|). Invariant (caller-enforced, not re-checked on insert): no two
// stored graphs are isomorphic. Growth is append-only; ids are never
// reused. Each method holds an internal RWMutex, but a lookup followed by
// Add (as BasisCoefficients does under AllowExpand) is not atomic, so
// goroutines that grow the same Space need external locking to keep the
// invariant, matching spasmspace.py's externally-serialized assumption.
type Space struct {
	mu      sync.RWMutex
	graphs  map[ID]*graph.Graph
	evIndex map[evKey][]ID
	oracle  canon.Oracle
}

// NewSpace returns an empty Space using oracle for isomorphism tests
// during basis construction.
func NewSpace(oracle canon.Oracle) *Space {
	return &Space{
		graphs:  make(map[ID]*graph.Graph),
		evIndex: make(map[evKey][]ID),
		oracle:  oracle,
	}
}

// StripTransient clears the cached oracle handle, the Go analogue of
// spasmspace.py's cleanup_for_storage: persistence must not capture
// transient canonical-form handles.
func (s *Space) StripTransient() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oracle = nil
}

// SetOracle restores the canonical-form oracle after a Space is loaded
// from persisted state (StripTransient cleared it before serialization).
func (s *Space) SetOracle(oracle canon.Oracle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oracle = oracle
}

// Oracle returns the space's current canonical-form oracle, or nil if
// none is set (e.g. immediately after Load, before SetOracle).
func (s *Space) Oracle() canon.Oracle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.oracle
}

// Add inserts g under a fresh id, indexed by (|E|,|V|), and returns that id.
func (s *Space) Add(g *graph.Graph) ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := ID(uuid.NewString())
	s.graphs[id] = g
	key := evKey{g.EdgeCount(), g.VertexCount()}
	s.evIndex[key] = append(s.evIndex[key], id)
	return id
}

// Get returns the graph stored under id.
func (s *Space) Get(id ID) (*graph.Graph, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.graphs[id]
	return g, ok
}

// Len returns the number of stored graphs.
func (s *Space) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.graphs)
}

// IterByEV returns the ids of every graph with exactly numEdges edges and
// numVertices vertices, in insertion order.
func (s *Space) IterByEV(numEdges, numVertices int) []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ID(nil), s.evIndex[evKey{numEdges, numVertices}]...)
}

// IterByPredicate returns the ids of every graph satisfying pred, sorted
// for deterministic iteration.
func (s *Space) IterByPredicate(pred func(*graph.Graph) bool) []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ID
	for id, g := range s.graphs {
		if pred(g) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type spaceSnapshot struct {
	Graphs  map[ID]*graph.Graph
	EVIndex map[evKey][]ID
}

// Save persists the space to w via encoding/gob, after stripping the
// transient oracle handle.
func (s *Space) Save(w io.Writer) error {
	s.StripTransient()
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := spaceSnapshot{Graphs: s.graphs, EVIndex: s.evIndex}
	return gob.NewEncoder(w).Encode(snap)
}

// Load replaces s's contents with the space persisted to r. The oracle
// must be restored separately via SetOracle.
func (s *Space) Load(r io.Reader) error {
	var snap spaceSnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graphs = snap.Graphs
	s.evIndex = snap.EVIndex
	return nil
}

// Bytes is a convenience wrapper around Save for in-memory persistence.
func (s *Space) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
