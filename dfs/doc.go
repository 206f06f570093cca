// Package dfs computes a topological ordering of a directed core.Graph.
//
// What:
//
//   - TopologicalSort drives a depth-first search from every unvisited
//     vertex, in the graph's sorted vertex order, using vertex coloring
//     (White, Gray, Black) to detect back-edges. It records each vertex's
//     DFS post-order and reverses it to produce the topological order.
//
// Why:
//   - layerflow's leveling phase needs a deterministic linear order that
//     respects every directed edge before it can assign levels.
//
// Determinism:
//
//	The result is reproducible for a given graph, but it is not a
//	"smallest ID first" ordering: it falls out of the fixed starting
//	order (g.Vertices() is sorted) combined with the fixed order neighbor
//	edges are iterated in during each visit. Two vertices with no path
//	between them can land in either relative order depending on which
//	DFS tree reaches them first.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  a back-edge was found (graph is not a DAG)
//   - ErrNeighborFetch  neighbor lookup on the underlying graph failed
package dfs
