package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		ObstacleValue: opts.ObstacleValue,
		values:        copyValues(values),
	}, nil
}

// NewBlankGrid returns a width×height grid with every cell free (value 0).
func NewBlankGrid(width, height int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
	}

	return NewGridGraph(values, opts)
}

// copyValues deep-copies a rectangular grid.
func copyValues(values [][]int) [][]int {
	cells := make([][]int, len(values))
	for y := range values {
		cells[y] = make([]int, len(values[y]))
		copy(cells[y], values[y])
	}

	return cells
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// Free reports whether c is in bounds and not an obstacle.
// Complexity: O(1).
func (gg *GridGraph) Free(c Cell) bool {
	return gg.InBounds(c) && gg.values[c.Y][c.X] != gg.ObstacleValue
}

// Value returns the stored value at c. The caller must ensure InBounds(c).
func (gg *GridGraph) Value(c Cell) int {
	return gg.values[c.Y][c.X]
}

// Neighbors returns the in-bounds free orthogonal neighbours of c in the fixed
// order left, right, up, down. Search results depend on this order when
// several shortest paths exist, so it must not change.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(NeighborOffsets))
	for _, d := range NeighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.Free(n) {
			out = append(out, n)
		}
	}

	return out
}

// FreeCount returns the number of free cells.
func (gg *GridGraph) FreeCount() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.values[y][x] != gg.ObstacleValue {
				n++
			}
		}
	}

	return n
}

// Values returns a deep copy of the underlying grid values.
func (gg *GridGraph) Values() [][]int {
	return copyValues(gg.values)
}

// With returns a copy of the grid where cell c holds value v.
// The receiver is left untouched, so in-flight searches over it stay valid.
func (gg *GridGraph) With(c Cell, v int) (*GridGraph, error) {
	if !gg.InBounds(c) {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, gg.Width, gg.Height)
	}
	next := &GridGraph{
		Width:         gg.Width,
		Height:        gg.Height,
		ObstacleValue: gg.ObstacleValue,
		values:        copyValues(gg.values),
	}
	next.values[c.Y][c.X] = v

	return next, nil
}

// Index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
