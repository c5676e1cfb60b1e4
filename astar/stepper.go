package astar

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// closedCheck selects when a neighbour's closed membership is tested during
// relaxation. Both orders give identical results under unit cost and a
// consistent heuristic; closedLast exists so tests can show that.
type closedCheck int

const (
	closedFirst closedCheck = iota // skip closed neighbours before anything else
	closedLast                     // test closed membership only when about to improve
)

// Step describes one frontier extraction and the relaxation that followed.
//   - Index:   1-based extraction number.
//   - Current: the extracted cell.
//   - Events:  transitions caused by this step, in order. The first step also
//     carries the initial opening of the start cell.
//   - Done:    the search has terminated; Found tells how.
type Step struct {
	Index   int
	Current Cell
	Events  []Event
	Done    bool
	Found   bool
}

// Stepper runs a search one extraction at a time. It holds the whole search
// state for a single start/goal pair and is discarded afterwards.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	grid  Grid
	start Cell
	goal  Cell
	opts  Options
	check closedCheck

	gCost    map[Cell]int  // best known cost from start; only ever decreases
	cameFrom map[Cell]Cell // predecessor on the best known path
	closed   map[Cell]bool // finalized cells; never re-enter the frontier
	open     frontier

	steps   int
	done    bool
	found   bool
	path    Path
	pending []Event // events not yet handed out by Step
	trace   []Event // full trace when opts.Trace

	// reopenAttempts counts relaxations that would have improved a closed
	// cell; it stays zero under a consistent heuristic.
	reopenAttempts int
}

// NewStepper validates the inputs and prepares a search from start to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be in bounds (ErrInvalidEndpoint).
//
// A blocked start or goal is not an error: the Stepper is created already
// finished with Found=false and nothing explored.
func NewStepper(g Grid, start, goal Cell, opts ...Option) (*Stepper, error) {
	if isNil(g) {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for _, c := range []Cell{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEndpoint, c)
		}
	}

	s := &Stepper{
		grid:     g,
		start:    start,
		goal:     goal,
		opts:     cfg,
		gCost:    make(map[Cell]int),
		cameFrom: make(map[Cell]Cell),
		closed:   make(map[Cell]bool),
		open:     newFrontier(cfg.Frontier, 64),
	}
	if !g.Free(start) || !g.Free(goal) {
		s.done = true
		return s, nil
	}

	s.gCost[start] = 0
	s.open.push(start, cfg.Heuristic(start, goal))
	s.emit(EventOpened, start)

	return s, nil
}

// isNil catches typed nil pointers hidden inside the Grid interface.
func isNil(g Grid) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool { return s.done }

// Steps returns the number of extractions performed so far.
func (s *Stepper) Steps() int { return s.steps }

// Step extracts the best frontier cell and relaxes its neighbours.
// It returns ok=false, doing nothing, once the search has terminated; the
// final outcome is then available from Result.
func (s *Stepper) Step() (Step, bool) {
	if s.done {
		return Step{Index: s.steps, Done: true, Found: s.found}, false
	}
	if s.open.Len() == 0 {
		s.done = true
		return Step{Index: s.steps, Done: true}, false
	}

	s.steps++
	current := s.open.popMin()
	s.emit(EventClosed, current)

	if current == s.goal {
		s.done = true
		s.found = true
		s.path = reconstructPath(s.cameFrom, s.start, s.goal)
		return s.flush(Step{Index: s.steps, Current: current, Done: true, Found: true}), true
	}

	s.closed[current] = true
	s.relax(current)

	return s.flush(Step{Index: s.steps, Current: current}), true
}

// relax applies the unit-cost relaxation to every in-bounds free neighbour.
//
// Closed neighbours are skipped outright. That is valid only because every
// step costs 1 and the heuristic is consistent: a closed cell already holds
// its minimal g-cost, so no later path can improve it.
func (s *Stepper) relax(current Cell) {
	tentative := s.gCost[current] + 1
	for _, d := range gridgraph.NeighborOffsets {
		n := Cell{X: current.X + d[0], Y: current.Y + d[1]}
		if !s.grid.Free(n) {
			continue
		}
		if s.check == closedFirst && s.closed[n] {
			continue
		}

		if g, seen := s.gCost[n]; seen && tentative >= g {
			continue
		}
		if s.closed[n] {
			// only reachable with closedLast
			s.reopenAttempts++
			continue
		}

		s.gCost[n] = tentative
		s.cameFrom[n] = current
		f := float64(tentative) + s.opts.Heuristic(n, s.goal)
		if s.open.contains(n) {
			s.open.update(n, f)
			continue
		}
		s.open.push(n, f)
		s.emit(EventOpened, n)
	}
}

// emit queues an event for the current step, records it when tracing and
// forwards it to the OnEvent callback.
func (s *Stepper) emit(kind EventKind, c Cell) {
	e := Event{Kind: kind, Cell: c, Step: s.steps}
	s.pending = append(s.pending, e)
	if s.opts.Trace {
		s.trace = append(s.trace, e)
	}
	if s.opts.OnEvent != nil {
		s.opts.OnEvent(e)
	}
}

// flush attaches pending events to st and clears the queue.
func (s *Stepper) flush(st Step) Step {
	st.Events = s.pending
	s.pending = nil

	return st
}

// Result returns the outcome so far. Before the search is done it reports
// Found=false with the expansions performed up to now.
func (s *Stepper) Result() Result {
	res := Result{
		Found:    s.found,
		Expanded: s.steps,
		Events:   s.trace,
	}
	if s.found {
		res.Path = s.path
		res.Cost = s.path.Len()
	}

	return res
}
