// Package layout computes readable 2D layouts for directed task-dependency
// graphs: vertices are arranged into discrete horizontal levels consistent
// with edge direction, and columns within a level are chosen by a bounded
// local-search heuristic that reduces edge crossings between adjacent
// levels.
//
// The pipeline, applied independently to each weakly-connected component of
// the input graph, is:
//
//	split      -- partition the graph into weakly-connected components
//	level      -- assign each vertex an integer level respecting edge direction
//	center     -- pad every level with empty slots on both sides, centered
//	refine     -- interleave crossing reduction and gap sliding to a fixed point
//	roots-to-top (optional) -- pull sources onto level 0
//	emit       -- convert the (level, column) grid into pixel coordinates
//
// Two entry points share one engine: Layout accepts a raw vertex/edge list
// (the language-agnostic functional contract this package implements),
// LayoutGraph accepts a *core.Graph. Both are deterministic for a fixed
// input order: dfs.TopologicalSort drives leveling from a DFS over
// Vertices() (itself sorted) in a fixed neighbor-iteration order, so a
// given graph always yields the same topological order and therefore the
// same levels — but two vertices with no path between them are ordered by
// DFS reverse-post-order, not by comparing their identifiers directly.
//
// The engine fans the per-component pipeline out across a bounded worker
// pool (golang.org/x/sync/errgroup) since no pass after splitting touches
// another component's state; see Option and WithLogger for observing that
// work.
package layout
