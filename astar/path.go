package astar

import "fmt"

// Path is an ordered sequence of cells from start to goal inclusive.
type Path []Cell

// Len returns the number of moves (edges) on the path; a single-cell path has
// length 0 and an empty path -1.
func (p Path) Len() int {
	return len(p) - 1
}

// Validate checks that p runs from start to goal over free cells of g with
// each consecutive pair 4-adjacent.
func (p Path) Validate(g Grid, start, goal Cell) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != start {
		return fmt.Errorf("%w: starts at %s, want %s", ErrInvalidPath, p[0], start)
	}
	if p[len(p)-1] != goal {
		return fmt.Errorf("%w: ends at %s, want %s", ErrInvalidPath, p[len(p)-1], goal)
	}
	for i, c := range p {
		if !g.Free(c) {
			return fmt.Errorf("%w: cell %d %s is not free", ErrInvalidPath, i, c)
		}
		if i > 0 && !p[i-1].Adjacent(c) {
			return fmt.Errorf("%w: %s→%s is not a unit move", ErrInvalidPath, p[i-1], c)
		}
	}

	return nil
}

// reconstructPath follows cameFrom from goal back to start and reverses the
// collected cells so the path runs start→goal.
func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) Path {
	path := Path{goal}
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
