package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid boundaries.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrParse indicates a malformed textual grid.
	ErrParse = errors.New("gridgraph: malformed grid text")
)
