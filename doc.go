// Package pact counts graph homomorphisms and subgraph isomorphisms between
// a small pattern graph P and a (possibly large) host graph H.
//
// What is PACT?
//
//	A relational query engine for pattern counting that builds together:
//
//	  • Hypertree decomposition: turn P into a join tree (GYO fast path for
//	    acyclic patterns, an external solver + cover refinement for cyclic ones)
//	  • A compiled relational plan: RENAME/JOIN/SEMIJOIN/PROJECT/COUNT_EXT/SUM_COUNT
//	    operators executed bottom-up over the join tree against H
//	  • A spasm-space coefficient decomposition: derive subgraph-isomorphism
//	    counts from homomorphism counts via isomorphism-class bookkeeping
//
// Why PACT?
//
//   - Scales with pattern treewidth, not pattern size
//   - Arbitrary-precision counts: int64 fast path, escalating to math/big.Int
//     only when an overflow is predicted
//   - Pure Go core, with a small number of well-chosen third-party
//     dependencies for CLI, config, and observability
//
// Everything is organized under subpackages:
//
//	graph/      — shared Graph/Vertex/Edge representation for P, H, and spasm basis graphs
//	bfs/, dfs/  — traversal primitives used by shape detection and connectivity checks
//	builder/    — constructors for common pattern shapes (path, cycle, star, wheel, ...)
//	hypergraph/ — hypergraph view of a pattern's edge cover
//	tdecomp/    — tree/hypertree decomposition types
//	decomp/     — GYO join-tree construction and cover refinement
//	htdsolver/  — external hypertree-decomposition solver subprocess client
//	canon/      — canonical-form oracle (isomorphism & automorphism counting)
//	plan/       — relational plan compiler
//	exec/       — plan executor and tagged int64/big.Int multiplicities
//	spasm/      — isomorphism-class coefficient decomposition
//	graph6/     — graph6/sparse6 encode/decode
//	config/     — viper-based configuration
//	cmd/pactctl/ — command-line entry point
package pact
