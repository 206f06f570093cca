package layout

// isTrivial reports whether the component should skip the outer
// Crossing-reducer/Gap-slider refinement loop and go straight to emission
// after Centering, per §4.2's special cases: a component of at most two
// vertices, or one with no edges at all (only reachable here for the
// single-vertex case, since splitComponents never groups unconnected
// vertices into one component -- see SPEC_FULL.md §12 for why that
// diverges from original_source). The Centerer itself still runs for a
// trivial component: its single column needs the same leading empty slot
// a refined component's columns get, so the emitted x coordinate matches
// §4.8/§8 (node_separation, not 0).
func (dc *denseComponent) isTrivial() bool {
	if len(dc.ids) <= 2 {
		return true
	}
	for _, s := range dc.succ {
		if len(s) > 0 {
			return false
		}
	}
	return true
}

// center pads every level with emptySlot on both sides, per §4.3: prepend
// floor((maxLen-l)/2)+1, append floor((maxLen-l)/2). A level reaches length
// maxLen+1 when maxLen-l is even and length maxLen when it is odd, so levels
// do not always end up the same length. Then rebuilds indexOf for every
// vertex.
func (dc *denseComponent) center() {
	maxLen := 0
	for _, lvl := range dc.grid {
		if len(lvl) > maxLen {
			maxLen = len(lvl)
		}
	}

	for li, lvl := range dc.grid {
		pad := (maxLen - len(lvl)) / 2
		prepend, appendN := pad+1, pad

		padded := make([]int, 0, prepend+len(lvl)+appendN)
		for i := 0; i < prepend; i++ {
			padded = append(padded, emptySlot)
		}
		padded = append(padded, lvl...)
		for i := 0; i < appendN; i++ {
			padded = append(padded, emptySlot)
		}
		dc.grid[li] = padded
	}

	dc.reindex()
}

// reindex recomputes indexOf from the current grid contents.
func (dc *denseComponent) reindex() {
	if dc.indexOf == nil {
		dc.indexOf = make([]int, len(dc.ids))
	}
	for _, lvl := range dc.grid {
		for col, v := range lvl {
			if v != emptySlot {
				dc.indexOf[v] = col
			}
		}
	}
}
