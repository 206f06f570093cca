package layout

// emit converts dc's finished grid into pixel positions, per §4.8: offset
// is 1 if level 0 holds no occupied slot (else 0); for a vertex at grid
// position (level, col), x = col*nodeSeparation and
// y = (-level+offset)*nodeSeparation (levels grow downward visually, so y
// decreases as level increases). Width is the maximum number of occupied
// slots in any level; height is the number of levels holding at least one
// occupied slot.
func (dc *denseComponent) emit(nodeSeparation int) Component {
	offset := 0
	if len(dc.grid) == 0 || countOccupied(dc.grid[0]) == 0 {
		offset = 1
	}

	positions := make(map[string]Position, len(dc.ids))
	width, height := 0, 0
	for level, lvl := range dc.grid {
		occupied := countOccupied(lvl)
		if occupied == 0 {
			continue
		}
		height++
		if occupied > width {
			width = occupied
		}
		for col, v := range lvl {
			if v == emptySlot {
				continue
			}
			positions[dc.ids[v]] = Position{
				X: col * nodeSeparation,
				Y: (-level + offset) * nodeSeparation,
			}
		}
	}

	return Component{Positions: positions, Width: width, Height: height}
}

func countOccupied(lvl []int) int {
	n := 0
	for _, v := range lvl {
		if v != emptySlot {
			n++
		}
	}
	return n
}
