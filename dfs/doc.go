// Package dfs implements cycle detection on a graph.Graph, supporting both
// directed and undirected graphs where appropriate.
//
// What:
//
//   - DetectCycles: enumerates all simple cycles in directed or undirected
//     graphs using vertex coloring (White, Gray, Black) with back‑edge
//     recording and canonical signature deduplication.
//
// Why:
//   - Report a pattern's simple cycles as a diagnostic (cmd/pactctl
//     decompose prints the cycle count); the decomposition acquirer decides
//     acyclicity on its own through the GYO join-tree reduction.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation-state constants
//
// Complexity:
//
//   - DetectCycles: Time O(V+E + C*L), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length; normalization is O(L) via Booth's
//     minimal rotation)
//
// Functions:
//
//   - DetectCycles(g *graph.Graph) (bool, [][]string, error)
//     report existence and list of simple cycles
package dfs
