// Package gridgraph treats a rectangular 2D grid of integer cell values as an
// undirected, unit-cost, 4-connected graph of free cells.
//
// What:
//
//   - GridGraph wraps a [][]int grid; a cell is blocked when its value equals
//     GridOptions.ObstacleValue and free otherwise.
//   - Neighbors yields the in-bounds free orthogonal neighbours of a cell in a
//     fixed order (left, right, up, down), which search algorithms rely on for
//     reproducible results.
//   - ConnectedComponents / Connected identify free-cell regions.
//   - Distance is a plain breadth-first search and serves as an independent
//     oracle for shortest-path lengths.
//   - MinimumBreach computes, with a 0-1 BFS, the fewest obstacle cells that
//     would need clearing to join two cells.
//   - Parse / Load / Encode read and write the textual grid format: integers
//     separated by whitespace, one row per line.
//
// Why:
//
//   - Game maps and puzzles: obstacle grids for pathfinding.
//   - Diagnostics: explain why no path exists between two cells.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory (deep copy).
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - Distance:            O(W×H), Memory: O(W×H).
//   - MinimumBreach:       O(W×H), Memory: O(W×H).
//
// Coordinates:
//
//	Cells are addressed as (X, Y) with X the column and Y the row, both
//	0-based; values are stored row-major as Values[y][x].
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrParse: textual grid contains a non-integer token.
package gridgraph
