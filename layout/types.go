package layout

import (
	"context"

	"github.com/charmbracelet/log"
)

// defaultNodeSize matches the concrete node_size used throughout the
// worked examples and test scenarios this package's tests are built on.
const defaultNodeSize = 40

// config holds the resolved settings for one Layout/LayoutGraph call.
// Built by applying Option values over sensible defaults, mirroring
// core.GraphOption's "defaults + functional overrides" shape.
type config struct {
	nodeSize    int
	rootsToTop  bool
	logger      *log.Logger
	ctx         context.Context
	parallelism int
}

func defaultConfig() config {
	return config{
		nodeSize:    defaultNodeSize,
		rootsToTop:  false,
		logger:      discardLogger(),
		ctx:         context.Background(),
		parallelism: 0, // 0 means "let the engine pick" — see api.go
	}
}

// Option configures a Layout/LayoutGraph call. Grounded on
// core.GraphOption/core.EdgeOption and dfs.WithCancelContext's functional
// options pattern.
type Option func(*config)

// WithNodeSize sets the pixel size of a vertex; spacing between adjacent
// levels and columns is derived as nodeSize*4. Must be positive, checked
// at call time (see ErrInvalidParam).
func WithNodeSize(nodeSize int) Option {
	return func(c *config) { c.nodeSize = nodeSize }
}

// WithRootsToTop enables the optional post-pass that pulls every source
// vertex (no incoming edges) onto level 0.
func WithRootsToTop(rootsToTop bool) Option {
	return func(c *config) { c.rootsToTop = rootsToTop }
}

// WithLogger attaches a structured logger; the engine emits Info-level
// start/finish summaries per call and a Debug-level line per refinement
// round. A nil logger leaves the default, which discards all output.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithContext attaches a cancellation context, checked before each
// component's pipeline starts; a component already being laid out runs to
// completion. Mirrors dfs.WithCancelContext.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithParallelism bounds the number of components laid out concurrently.
// The default (0, or any value <= 0) lets the engine use GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(c *config) { c.parallelism = n }
}

// Position is an emitted pixel coordinate for one vertex.
type Position struct {
	X int
	Y int
}

// Component is one weakly-connected component's finished layout, as
// returned by LayoutGraph: Positions keys are the *core.Graph vertex IDs
// the component was built from.
type Component struct {
	Positions map[string]Position
	Width     int
	Height    int
}

// Result is the full output of a LayoutGraph call: one Component per
// weakly-connected component of the input, in a stable but otherwise
// unspecified order.
type Result struct {
	Components []Component
}

// IntComponent is one weakly-connected component's finished layout, as
// returned by Layout: Positions keys are the caller's original 1-based
// integer vertex identifiers.
type IntComponent struct {
	Positions map[int]Position
	Width     int
	Height    int
}

// IntResult is the full output of a Layout call.
type IntResult struct {
	Components []IntComponent
}
