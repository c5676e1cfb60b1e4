package gridgraph

// ConnectedComponents finds all contiguous regions of free cells under
// 4-connectivity. Components are ordered by their first cell in row-major
// order; cells within a component appear in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]Cell

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !gg.Free(gg.Coordinate(i0)) {
			continue // wall or already collected
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, v := range gg.Neighbors(u) {
				vi := gg.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf labels every cell with the index of its free region, in the same
// numbering ConnectedComponents uses; walls are labelled -1.
// The returned slice is indexed by Index(cell).
//
// Time:   O(W·H).
// Memory: O(W·H).
func (gg *GridGraph) ComponentOf() []int {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !gg.Free(gg.Coordinate(i0)) {
			continue
		}
		labels[i0] = next
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.Neighbors(gg.Coordinate(queue[qi])) {
				vi := gg.Index(v)
				if labels[vi] < 0 {
					labels[vi] = next
					queue = append(queue, vi)
				}
			}
		}
		next++
	}

	return labels
}

// Connected reports whether a and b are free cells of the same region.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.Free(a) || !gg.Free(b) {
		return false
	}
	labels := gg.ComponentOf()

	return labels[gg.Index(a)] == labels[gg.Index(b)]
}
