package layout

import (
	"fmt"
	"math"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/layerflow/core"
)

// maxNodeSize bounds node_size so that node_separation (node_size*4) stays
// inside a signed 32-bit range; any coordinate derived from it (column/level
// index times node_separation, for graphs up to the "low thousands" of
// vertices this spec targets) then fits comfortably in a 64-bit int, per
// §7's overflow-prevention requirement. Checked once here rather than at
// every multiplication site.
const maxNodeSize = math.MaxInt32 / 8

// validateNodeSize enforces §7's ErrInvalidParam contract: node_size must
// be positive and small enough that node_separation*column/level
// computations cannot overflow for in-scope graph sizes.
func validateNodeSize(nodeSize int) error {
	if nodeSize <= 0 {
		return fmt.Errorf("%w: node size must be positive, got %d", ErrInvalidParam, nodeSize)
	}
	if nodeSize > maxNodeSize {
		return fmt.Errorf("%w: node size %d exceeds maximum of %d", ErrInvalidParam, nodeSize, maxNodeSize)
	}
	return nil
}

// Layout is the primary, language-agnostic entry point (§6): it accepts a
// raw vertex/edge list and returns per-component pixel positions keyed by
// the caller's original integer vertex identifiers.
//
// vertices must be unique; edges must reference only identifiers present
// in vertices (ErrUnknownVertex otherwise) and must form a DAG over
// vertices (ErrCyclicInput otherwise).
func Layout(vertices []int, edges [][2]int, opts ...Option) (IntResult, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateNodeSize(cfg.nodeSize); err != nil {
		return IntResult{}, err
	}
	if len(vertices) == 0 {
		return IntResult{}, nil
	}

	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	known := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		known[v] = true
		if err := g.AddVertex(strconv.Itoa(v)); err != nil {
			return IntResult{}, err
		}
	}
	for _, e := range edges {
		tail, head := e[0], e[1]
		if !known[tail] || !known[head] {
			return IntResult{}, fmt.Errorf("%w: edge (%d, %d)", ErrUnknownVertex, tail, head)
		}
		if _, err := g.AddEdge(strconv.Itoa(tail), strconv.Itoa(head), 0); err != nil {
			return IntResult{}, err
		}
	}

	result, err := engine(g, cfg)
	if err != nil {
		return IntResult{}, err
	}

	out := IntResult{Components: make([]IntComponent, len(result.Components))}
	for i, comp := range result.Components {
		positions := make(map[int]Position, len(comp.Positions))
		for k, pos := range comp.Positions {
			id, convErr := strconv.Atoi(k)
			if convErr != nil {
				return IntResult{}, fmt.Errorf("layout: internal: non-integer vertex id %q", k)
			}
			positions[id] = pos
		}
		out.Components[i] = IntComponent{Positions: positions, Width: comp.Width, Height: comp.Height}
	}

	return out, nil
}

// LayoutGraph is the *core.Graph-typed entry point (§6): it derives a
// stable vertex ordering from g (core.Graph.Vertices() is already sorted)
// and delegates to the same engine Layout uses, so both produce
// bit-identical layouts for the same graph.
func LayoutGraph(g *core.Graph, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateNodeSize(cfg.nodeSize); err != nil {
		return Result{}, err
	}
	if g == nil || g.VertexCount() == 0 {
		return Result{}, nil
	}

	return engine(g, cfg)
}

// engine runs the shared split/level/refine/emit pipeline over g and
// fans the per-component work out across a bounded worker pool, per
// SPEC_FULL.md §5: no pass after splitComponents touches another
// component's state, so concurrent per-component pipelines are safe.
func engine(g *core.Graph, cfg config) (Result, error) {
	comps, err := splitComponents(g)
	if err != nil {
		return Result{}, err
	}

	cfg.logger.Info("layout: starting",
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "components", len(comps))

	nodeSeparation := cfg.nodeSize * 4
	results := make([]Component, len(comps))

	grp, ctx := errgroup.WithContext(cfg.ctx)
	limit := cfg.parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	grp.SetLimit(limit)
	for i, dc := range comps {
		i, dc := i, dc
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			dc.layoutComponent(cfg, cfg.logger)
			results[i] = dc.emit(nodeSeparation)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	cfg.logger.Info("layout: finished", "components", len(results))

	return Result{Components: results}, nil
}
