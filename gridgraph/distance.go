package gridgraph

// Distance returns the number of unit moves on a shortest 4-connected path of
// free cells from a to b, or ok=false when either cell is blocked or they lie
// in different regions. It is a plain breadth-first search and makes no use of
// heuristics, so it doubles as a reference for heuristic searches.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (gg *GridGraph) Distance(a, b Cell) (dist int, ok bool) {
	if !gg.Free(a) || !gg.Free(b) {
		return 0, false
	}
	if a == b {
		return 0, true
	}

	depth := make([]int, gg.Width*gg.Height)
	for i := range depth {
		depth[i] = -1
	}
	depth[gg.Index(a)] = 0
	queue := []Cell{a}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := depth[gg.Index(u)]
		for _, v := range gg.Neighbors(u) {
			vi := gg.Index(v)
			if depth[vi] >= 0 {
				continue
			}
			depth[vi] = du + 1
			if v == b {
				return du + 1, true
			}
			queue = append(queue, v)
		}
	}

	return 0, false
}
