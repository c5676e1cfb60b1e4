package gridgraph

import (
	"container/list"
	"fmt"
)

// MinimumBreach finds a path from a to b that crosses the fewest obstacle
// cells, i.e. the minimum number of walls that would need clearing for a and b
// to become connected. Returns the sequence of cells (including a and b) and
// the number of obstacle cells on it; cost is 0 when a and b are already
// connected.
//
// Behavior:
//  1. Validate both cells are in bounds (ErrOutOfBounds).
//  2. 0–1 BFS from a:
//     • Moving into a free cell     → cost 0
//     • Moving into an obstacle     → cost 1
//  3. Stop when b is dequeued.
//  4. Reconstruct path via predecessor links.
//
// Complexity: O(W·H) time, since every cell enters the deque a bounded
// number of times.
//
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) MinimumBreach(a, b Cell) (path []Cell, cost int, err error) {
	for _, c := range []Cell{a, b} {
		if !gg.InBounds(c) {
			return nil, 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, gg.Width, gg.Height)
		}
	}

	N := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	stepCost := func(c Cell) int {
		if gg.Free(c) {
			return 0
		}
		return 1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src := gg.Index(a)
	dist[src] = stepCost(a)
	dq := list.New()
	dq.PushFront(src)

	target := gg.Index(b)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		uc := gg.Coordinate(u)
		for _, d := range NeighborOffsets {
			vc := Cell{X: uc.X + d[0], Y: uc.Y + d[1]}
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.Index(vc)
			step := stepCost(vc)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// BreachWalls returns just the obstacle cells on a minimum breach between a
// and b, in path order. It is empty when a and b are already connected.
func (gg *GridGraph) BreachWalls(a, b Cell) ([]Cell, error) {
	path, cost, err := gg.MinimumBreach(a, b)
	if err != nil {
		return nil, err
	}
	walls := make([]Cell, 0, cost)
	for _, c := range path {
		if !gg.Free(c) {
			walls = append(walls, c)
		}
	}

	return walls, nil
}
