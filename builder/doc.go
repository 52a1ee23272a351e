// Package builder constructs the small, deterministic pattern shapes used as
// seed fixtures and composition blocks throughout PACT: paths, cycles,
// stars, wheels, cliques, and complete bipartite graphs.
//
// Every constructor is a Constructor closure captured by a shape factory
// (Path, Cycle, Star, ...) and applied to a *graph.Graph via BuildGraph.
// Vertex IDs are produced by a configurable IDFn so callers can align
// labels with canon-oracle fixtures or golden test files; edge emission
// order is always deterministic for a fixed (n, options) pair.
//
// Complexity: each shape factory documents its own vertex/edge cost; all
// are linear or low-degree-polynomial in n, well within PACT's pattern
// size budget (patterns are small by construction, spec §2).
package builder
