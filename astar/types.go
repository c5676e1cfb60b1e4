package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates start or goal lies outside the grid.
	ErrInvalidEndpoint = errors.New("astar: endpoint out of grid bounds")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrInvalidPath is returned by Path.Validate.
	ErrInvalidPath = errors.New("astar: invalid path")
)

// Cell is a grid coordinate; see gridgraph.Cell.
type Cell = gridgraph.Cell

// Grid is the read-only view of an obstacle grid the search needs.
// *gridgraph.GridGraph satisfies it.
type Grid interface {
	// InBounds reports whether c lies inside the grid.
	InBounds(c Cell) bool
	// Free reports whether c is in bounds and not blocked.
	Free(c Cell) bool
}

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, to Cell) float64

// Euclidean is the straight-line distance sqrt(dx² + dy²).
func Euclidean(from, to Cell) float64 {
	dx, dy := float64(from.X-to.X), float64(from.Y-to.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan is |dx| + |dy|, the exact remaining cost on an empty 4-connected grid.
func Manhattan(from, to Cell) float64 {
	return math.Abs(float64(from.X-to.X)) + math.Abs(float64(from.Y-to.Y))
}

// HeuristicByName resolves "euclidean" (or "") and "manhattan".
func HeuristicByName(name string) (Heuristic, error) {
	switch name {
	case "", "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
	}
}

// FrontierKind selects the open-set implementation.
type FrontierKind int

const (
	// FrontierHeap is an indexed binary heap: O(log n) extraction.
	FrontierHeap FrontierKind = iota
	// FrontierLinear scans an insertion-ordered list for the minimum: O(n)
	// extraction. It returns the same paths as FrontierHeap and is kept as a
	// reference for small grids and comparisons.
	FrontierLinear
)

// String returns the frontier name.
func (k FrontierKind) String() string {
	switch k {
	case FrontierHeap:
		return "heap"
	case FrontierLinear:
		return "linear"
	default:
		return fmt.Sprintf("FrontierKind(%d)", int(k))
	}
}

// FrontierByName resolves "heap" (or "") and "linear".
func FrontierByName(name string) (FrontierKind, error) {
	switch name {
	case "", "heap":
		return FrontierHeap, nil
	case "linear":
		return FrontierLinear, nil
	default:
		return 0, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, name)
	}
}

// EventKind classifies a trace event.
type EventKind int

const (
	// EventOpened: the cell was inserted into the frontier.
	EventOpened EventKind = iota
	// EventClosed: the cell was extracted from the frontier and finalized.
	EventClosed
)

// String returns "open" or "closed".
func (k EventKind) String() string {
	if k == EventClosed {
		return "closed"
	}
	return "open"
}

// Event is one frontier transition. Step is the number of the extraction that
// caused it; the initial opening of the start cell has Step 0.
type Event struct {
	Kind EventKind
	Cell Cell
	Step int
}

// Result holds the outcome of a search.
//   - Found:    false means NotFound (goal unreachable or endpoint blocked).
//   - Path:     start→goal inclusive when Found, nil otherwise.
//   - Cost:     number of moves on Path.
//   - Expanded: number of frontier extractions performed.
//   - Events:   ordered trace, only recorded with WithTrace.
type Result struct {
	Path     Path
	Found    bool
	Cost     int
	Expanded int
	Events   []Event
}

// Options configures a search.
type Options struct {
	// Heuristic estimates remaining cost; must be admissible and consistent
	// for unit 4-connected moves. Default Euclidean.
	Heuristic Heuristic

	// Frontier selects the open-set implementation. Default FrontierHeap.
	Frontier FrontierKind

	// Trace records every Event into Result.Events.
	Trace bool

	// OnEvent, if set, receives every Event as it happens.
	OnEvent func(Event)

	// internal error recorded during option parsing
	err error
}

// Option configures search behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with the Euclidean heuristic, the heap
// frontier, no trace recording and no event callback.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		Frontier:  FrontierHeap,
	}
}

// WithHeuristic replaces the Euclidean heuristic. A nil heuristic is an
// option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithFrontier selects the open-set implementation.
func WithFrontier(k FrontierKind) Option {
	return func(o *Options) {
		if k != FrontierHeap && k != FrontierLinear {
			o.err = fmt.Errorf("%w: unknown frontier %d", ErrOptionViolation, int(k))
			return
		}
		o.Frontier = k
	}
}

// WithTrace records the ordered event trace into Result.Events.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithOnEvent registers a callback that receives every Event.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}
