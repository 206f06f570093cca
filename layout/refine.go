package layout

import "github.com/charmbracelet/log"

// maxRefinementRounds and gapSliderPassesPerRound are literal constants
// from original_source/src/graph_layout.rs's align_nodes: a 10-round outer
// loop, each round running 2 Crossing-reducer passes then 2 Gap-slider
// passes.
const (
	maxRefinementRounds     = 10
	crossingPassesPerRound  = 2
	gapSliderPassesPerRound = 2
)

// layoutComponent runs the full per-component pipeline (§4.2-§4.7) over
// dc: Leveler, then Centerer unconditionally (even a trivial ≤2-vertex
// component needs its single column shifted onto the Centerer's leading
// empty slot to land at x = node_separation, per §4.8/§8), then -- unless
// the component is trivial per §4.2's special cases -- the outer
// Crossing-reducer/Gap-slider refinement loop, then the optional
// roots-to-top post-pass.
func (dc *denseComponent) layoutComponent(cfg config, logger *log.Logger) {
	dc.level()
	dc.center()

	if !dc.isTrivial() {
		dc.refine(logger)
	}

	if cfg.rootsToTop {
		dc.rootsToTop()
	}
}

// refine runs the outer refinement loop (§4.6): up to maxRefinementRounds
// rounds, each performing crossingPassesPerRound Crossing-reducer passes
// followed by gapSliderPassesPerRound Gap-slider passes, exiting early if
// a round's Gap-slider passes made no move at all.
func (dc *denseComponent) refine(logger *log.Logger) {
	for round := 0; round < maxRefinementRounds; round++ {
		for i := 0; i < crossingPassesPerRound; i++ {
			dc.crossingPass()
		}

		movedThisRound := false
		for i := 0; i < gapSliderPassesPerRound; i++ {
			if dc.slidePass() {
				movedThisRound = true
			}
		}

		logger.Debug("refinement round complete", "round", round, "moved", movedThisRound)
		if !movedThisRound {
			break
		}
	}
}

// rootsToTop implements §4.7: every source vertex (no predecessors) not
// already on level 0 is moved there, then level 0's indexOf is rebuilt.
func (dc *denseComponent) rootsToTop() {
	moved := false
	for v := range dc.ids {
		if len(dc.pred[v]) == 0 && dc.levelOf[v] != 0 {
			dc.moveToLevel(v, 0)
			moved = true
		}
	}
	if moved {
		dc.reindexLevel(0)
	}
}

// reindexLevel recomputes indexOf for a single level only.
func (dc *denseComponent) reindexLevel(level int) {
	for col, v := range dc.grid[level] {
		if v != emptySlot {
			dc.indexOf[v] = col
		}
	}
}
