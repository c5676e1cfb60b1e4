// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// DefaultObstacleValue is the cell value that marks a wall in the persisted
// grid format.
const DefaultObstacleValue = 5

// Cell identifies a grid position. Equality is by coordinate value, so Cell
// is usable as a map key.
type Cell struct {
	X, Y int // Column and row, 0-based
}

// Adjacent reports whether c and o differ by exactly one unit along exactly
// one axis (4-connectivity).
func (c Cell) Adjacent(o Cell) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid classification.
type GridOptions struct {
	// ObstacleValue is the cell value treated as blocked; all other values are free.
	ObstacleValue int
}

// DefaultGridOptions returns a GridOptions with ObstacleValue=DefaultObstacleValue.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		ObstacleValue: DefaultObstacleValue,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built
// and therefore safe for concurrent readers.
// Width and Height define dimensions; values[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	ObstacleValue int
	values        [][]int
}

// NeighborOffsets lists orthogonal moves in expansion order: left, right, up, down.
// Neighbors, MinimumBreach and astar all walk this one table, so the order
// that picks among equal-cost paths is the same everywhere.
var NeighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
