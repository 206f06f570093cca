package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/layerflow/core"
	"github.com/katalvlaran/layerflow/dfs"
)

// emptySlot marks a vacant column in a component's grid.
const emptySlot = -1

// denseComponent is the arena-style representation §9 of the layout
// algorithm prescribes: a weakly-connected component re-indexed onto a
// dense, 0-based, topologically-ordered integer id space local to the
// component, so the inner leveling/crossing/sliding loops index flat
// slices instead of string-keyed maps.
//
// ids[i] is the original core.Graph vertex ID of dense id i; ids is
// itself the component's topological order, so "iterate dense ids
// ascending" and "iterate in topological order" are the same operation,
// and "iterate descending" is reverse topological order.
type denseComponent struct {
	ids []string

	succ           [][]int // succ[i]: dense ids j with edge i->j
	pred           [][]int // pred[i]: dense ids j with edge j->i
	undirNeighbors [][]int // undirected neighbors, deduplicated, excludes self

	levelOf []int
	indexOf []int
	grid    [][]int // grid[level] is a slice of dense ids or emptySlot
}

// splitComponents partitions g into its weakly-connected components and
// returns each as a denseComponent, ready for level.go's Leveler.
//
// Grounded on the BFS-over-undirected-adjacency technique read from the
// now-deleted gridgraph/components.go, and on core.InducedSubgraph (used
// here to carve out a *core.Graph per component so dfs.TopologicalSort --
// the teacher's own cycle-detecting sort -- can drive Phase A's ordering
// and double as the cycle check required by ErrCyclicInput).
func splitComponents(g *core.Graph) ([]*denseComponent, error) {
	vertices := g.Vertices() // sorted, stable
	edges := g.Edges()       // sorted by Edge.ID, stable

	undirected := make(map[string][]string, len(vertices))
	for _, id := range vertices {
		undirected[id] = nil
	}
	for _, e := range edges {
		undirected[e.From] = append(undirected[e.From], e.To)
		if e.From != e.To {
			undirected[e.To] = append(undirected[e.To], e.From)
		}
	}

	visited := make(map[string]bool, len(vertices))
	var memberSets []map[string]bool

	for _, v := range vertices {
		if visited[v] {
			continue
		}
		members := map[string]bool{}
		queue := []string{v}
		visited[v] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			members[cur] = true
			for _, n := range undirected[cur] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		memberSets = append(memberSets, members)
	}

	comps := make([]*denseComponent, 0, len(memberSets))
	for _, members := range memberSets {
		sub := core.InducedSubgraph(g, members)

		topoOrder, err := dfs.TopologicalSort(sub)
		if err != nil {
			if errors.Is(err, dfs.ErrCycleDetected) {
				return nil, fmt.Errorf("%w: %v", ErrCyclicInput, err)
			}
			return nil, err
		}

		denseOf := make(map[string]int, len(topoOrder))
		for i, id := range topoOrder {
			denseOf[id] = i
		}

		dc := &denseComponent{
			ids:            topoOrder,
			succ:           make([][]int, len(topoOrder)),
			pred:           make([][]int, len(topoOrder)),
			undirNeighbors: make([][]int, len(topoOrder)),
		}
		for _, e := range sub.Edges() {
			fi, ti := denseOf[e.From], denseOf[e.To]
			dc.succ[fi] = append(dc.succ[fi], ti)
			dc.pred[ti] = append(dc.pred[ti], fi)
			if fi != ti {
				dc.undirNeighbors[fi] = append(dc.undirNeighbors[fi], ti)
				dc.undirNeighbors[ti] = append(dc.undirNeighbors[ti], fi)
			}
		}
		for i := range dc.ids {
			// Duplicate parallel edges are tolerated on input but must not
			// be exploited (double-counted) by the crossing/sliding passes.
			dc.succ[i] = dedupSortedInts(dc.succ[i])
			dc.pred[i] = dedupSortedInts(dc.pred[i])
			dc.undirNeighbors[i] = dedupSortedInts(dc.undirNeighbors[i])
		}
		comps = append(comps, dc)
	}

	return comps, nil
}

func dedupSortedInts(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	sort.Ints(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
