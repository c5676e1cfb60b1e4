// Package render turns grids and search traces into text. A Board holds one
// presentation Marker per cell; a Renderer draws a Board with lipgloss styles
// or plain characters.
package render

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Marker is the presentation state of a cell. It never feeds back into search.
type Marker uint8

const (
	Free Marker = iota
	Wall
	Start
	Goal
	Open
	Closed
	Path
	markerCount
)

var markerNames = [markerCount]string{"free", "wall", "start", "goal", "open", "closed", "path"}

// String returns the lower-case marker name.
func (m Marker) String() string {
	if m < markerCount {
		return markerNames[m]
	}
	return "unknown"
}

// Code returns the numeric cell code used by the interactive visualizer's
// board: 0 free, 1 wall, 2 start or goal, 3 path, 4 open, 5 closed.
func (m Marker) Code() int {
	switch m {
	case Wall:
		return 1
	case Start, Goal:
		return 2
	case Path:
		return 3
	case Open:
		return 4
	case Closed:
		return 5
	default:
		return 0
	}
}

// Board is a Width×Height matrix of markers.
type Board struct {
	Width, Height int
	start, goal   gridgraph.Cell
	cells         []Marker
}

// NewBoard marks walls of gg and the two endpoints.
func NewBoard(gg *gridgraph.GridGraph, start, goal gridgraph.Cell) *Board {
	b := &Board{
		Width:  gg.Width,
		Height: gg.Height,
		start:  start,
		goal:   goal,
		cells:  make([]Marker, gg.Width*gg.Height),
	}
	for i := range b.cells {
		if !gg.Free(gg.Coordinate(i)) {
			b.cells[i] = Wall
		}
	}
	b.set(start, Start)
	b.set(goal, Goal)

	return b
}

// Overlay builds a board and replays events and path onto it.
func Overlay(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, events []astar.Event, path astar.Path) *Board {
	b := NewBoard(gg, start, goal)
	for _, e := range events {
		b.Apply(e)
	}
	b.MarkPath(path)

	return b
}

func (b *Board) inBounds(c gridgraph.Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

func (b *Board) set(c gridgraph.Cell, m Marker) {
	if b.inBounds(c) {
		b.cells[c.Y*b.Width+c.X] = m
	}
}

// At returns the marker of c, or Wall outside the board.
func (b *Board) At(c gridgraph.Cell) Marker {
	if !b.inBounds(c) {
		return Wall
	}
	return b.cells[c.Y*b.Width+c.X]
}

// Apply records one search event. Endpoints keep their own markers.
func (b *Board) Apply(e astar.Event) {
	if e.Cell == b.start || e.Cell == b.goal {
		return
	}
	switch e.Kind {
	case astar.EventOpened:
		b.set(e.Cell, Open)
	case astar.EventClosed:
		b.set(e.Cell, Closed)
	}
}

// MarkPath marks the interior cells of p.
func (b *Board) MarkPath(p astar.Path) {
	for _, c := range p {
		if c != b.start && c != b.goal {
			b.set(c, Path)
		}
	}
}

// Count returns how many cells carry m.
func (b *Board) Count(m Marker) int {
	n := 0
	for _, v := range b.cells {
		if v == m {
			n++
		}
	}
	return n
}

// Codes returns the board as rows of numeric codes, see Marker.Code.
func (b *Board) Codes() [][]int {
	rows := make([][]int, b.Height)
	for y := range rows {
		rows[y] = make([]int, b.Width)
		for x := range rows[y] {
			rows[y][x] = b.cells[y*b.Width+x].Code()
		}
	}
	return rows
}
