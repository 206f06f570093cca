// Package layerflow computes readable 2D layouts for directed task-dependency
// graphs.
//
// 🚀 What is layerflow?
//
//	A thread-safe-by-construction layout engine that brings together:
//
//	  • Core primitives: create vertices & edges, mutate safely under locks
//	  • A topological toolkit: cycle detection and deterministic topo-sort
//	  • A layered layout pipeline: leveling, centering, crossing reduction,
//	    gap sliding, and pixel-coordinate emission
//
// ✨ Why choose layerflow?
//
//   - Deterministic    — fixed tie-breaking makes layouts reproducible
//   - Heuristic, not exhaustive — a bounded local-search crossing reducer,
//     not a global optimizer
//   - Pure Go          — no cgo, minimal third-party surface
//
// Under the hood, everything is organized under three subpackages:
//
//	core/   — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	dfs/    — topological sort & cycle detection used to order levels
//	layout/ — the layered layout engine: Leveler, Centerer, Crossing
//	          reducer, Gap slider, and Coordinate emitter
//
// Quick ASCII example, a diamond dependency laid out in three levels:
//
//	      A
//	     / \
//	    B   C
//	     \ /
//	      D
//
// See layout/doc.go for the full pipeline description and
// layout/example_test.go for worked examples.
//
//	go get github.com/katalvlaran/layerflow/layout
package layerflow
