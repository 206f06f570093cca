package layout

// crossingPass runs one full left-to-right sweep of the Crossing reducer
// (§4.4) over every level, swapping an adjacent occupied pair (left, node)
// when doing so strictly reduces the count of crossings their successors'
// edges would produce. Returns whether any swap happened.
func (dc *denseComponent) crossingPass() bool {
	changed := false
	for level, lvl := range dc.grid {
		for i := 1; i < len(lvl); i++ {
			left, node := lvl[i-1], lvl[i]
			if left == emptySlot || node == emptySlot {
				continue
			}
			crossCount, crossCountSwap := dc.crossCounts(left, node, level)
			if crossCountSwap < crossCount {
				lvl[i-1], lvl[i] = node, left
				dc.indexOf[left], dc.indexOf[node] = i, i-1
				changed = true
			}
		}
	}
	return changed
}

// crossCounts computes the two quantities §4.4 defines for the pair
// (left, node) on the given level: crossCount, the number of (node-succ,
// left-succ) pairs where the left-successor sits strictly to the right of
// the node-successor (the crossing count in the current order), and
// crossCountSwap, the same count with the comparison flipped (the
// crossing count the pair would have after swapping).
func (dc *denseComponent) crossCounts(left, node, level int) (crossCount, crossCountSwap int) {
	nodeSucc := dc.successorsNear(node, level)
	leftSucc := dc.successorsNear(left, level)
	for _, s := range nodeSucc {
		is := dc.indexOf[s]
		for _, l := range leftSucc {
			il := dc.indexOf[l]
			switch {
			case il > is:
				crossCount++
			case il < is:
				crossCountSwap++
			}
		}
	}
	return crossCount, crossCountSwap
}

// successorsNear returns v's successors whose level is within one of
// level, i.e. |levelOf[succ] - level| < 2, per §4.4's crossing window.
func (dc *denseComponent) successorsNear(v, level int) []int {
	var out []int
	for _, s := range dc.succ[v] {
		d := dc.levelOf[s] - level
		if d < 0 {
			d = -d
		}
		if d < 2 {
			out = append(out, s)
		}
	}
	return out
}
