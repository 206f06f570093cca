package layout

// level runs the three-phase Leveler (§4.2): an initial topological-order
// assignment, then an upward relaxation pass driven by successors, then a
// downward relaxation pass driven by predecessors. dc.ids is already the
// component's topological order (see component.go), so "iterate ascending"
// is forward topological order and "iterate descending" is reverse
// topological order -- pinning both phases' iteration order for
// determinism per §5/§9.
func (dc *denseComponent) level() {
	n := len(dc.ids)
	dc.levelOf = make([]int, n)
	dc.grid = nil

	// Phase A: initial assignment in topological order.
	for v := 0; v < n; v++ {
		lvl := 0
		for _, p := range dc.pred[v] {
			if dc.levelOf[p]+1 > lvl {
				lvl = dc.levelOf[p] + 1
			}
		}
		dc.levelOf[v] = lvl
		dc.placeInGrid(v, lvl)
	}

	// Phase B: upward relaxation, reverse topological order.
	for v := n - 1; v >= 0; v-- {
		ceiling := len(dc.grid) // "current number of levels", re-read live
		m := ceiling
		for _, s := range dc.succ[v] {
			if dc.levelOf[s] < m {
				m = dc.levelOf[s]
			}
		}
		newLevel := m - 1
		if newLevel < 0 {
			newLevel = 0
		}
		dc.moveToLevel(v, newLevel)
	}

	// Phase C: downward relaxation, forward topological order.
	for v := 0; v < n; v++ {
		newLevel := 0
		for _, p := range dc.pred[v] {
			if dc.levelOf[p]+1 > newLevel {
				newLevel = dc.levelOf[p] + 1
			}
		}
		dc.moveToLevel(v, newLevel)
	}
}

// placeInGrid appends dense vertex v to grid[lvl] (growing the grid as
// needed), used only during Phase A's initial, append-only build.
func (dc *denseComponent) placeInGrid(v, lvl int) {
	for len(dc.grid) <= lvl {
		dc.grid = append(dc.grid, nil)
	}
	dc.grid[lvl] = append(dc.grid[lvl], v)
}

// moveToLevel relocates dense vertex v from its current level to newLevel,
// preserving the relative order of the remaining entries in the old level,
// per §4.2's Phase B/C update rule. A no-op if v is already at newLevel.
func (dc *denseComponent) moveToLevel(v, newLevel int) {
	old := dc.levelOf[v]
	if old == newLevel {
		return
	}
	lvl := dc.grid[old]
	for i, id := range lvl {
		if id == v {
			dc.grid[old] = append(lvl[:i], lvl[i+1:]...)
			break
		}
	}
	dc.levelOf[v] = newLevel
	dc.placeInGrid(v, newLevel)
}
