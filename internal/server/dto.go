package server

import (
	"github.com/katalvlaran/gridpath/astar"
)

// Point is a cell on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(c astar.Cell) Point { return Point{X: c.X, Y: c.Y} }

func (p Point) cell() astar.Cell { return astar.Cell{X: p.X, Y: p.Y} }

func toPoints(cells []astar.Cell) []Point {
	if cells == nil {
		return nil
	}
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = toPoint(c)
	}
	return out
}

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Grid          [][]int `json:"grid" binding:"required"`
	Start         *Point  `json:"start" binding:"required"`
	Goal          *Point  `json:"goal" binding:"required"`
	Heuristic     string  `json:"heuristic"`
	Frontier      string  `json:"frontier"`
	Trace         bool    `json:"trace"`
	ObstacleValue *int    `json:"obstacle_value"`
}

// EventDTO is one trace event on the wire.
type EventDTO struct {
	Kind string `json:"kind"`
	Cell Point  `json:"cell"`
	Step int    `json:"step"`
}

// SearchResponse is the reply to POST /v1/search. Breach lists the walls that
// would have to be cleared when no path exists.
type SearchResponse struct {
	ID       string     `json:"id"`
	Found    bool       `json:"found"`
	Path     []Point    `json:"path"`
	Cost     int        `json:"cost"`
	Expanded int        `json:"expanded"`
	Events   []EventDTO `json:"events,omitempty"`
	Breach   []Point    `json:"breach,omitempty"`
}

func toEvents(events []astar.Event) []EventDTO {
	if len(events) == 0 {
		return nil
	}
	out := make([]EventDTO, len(events))
	for i, e := range events {
		out[i] = EventDTO{Kind: e.Kind.String(), Cell: toPoint(e.Cell), Step: e.Step}
	}
	return out
}
