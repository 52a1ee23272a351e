// Package graph is PACT's shared representation for pattern graphs P, host
// graphs H, and spasm basis graphs F (spec §3, §4.A).
//
// Quick example:
//
//	g := graph.New(graph.WithDirected(false))
//	_, _ = g.AddEdge("a", "b")
//	_, _ = g.AddEdge("b", "c")
//	g.RecomputeShape()
//	fmt.Println(g.Shape().IsCycle) // false: a path, not a cycle
package graph
