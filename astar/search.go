package astar

import "iter"

// Search runs A* from start to goal on g until the goal is extracted or the
// frontier is exhausted.
//
// Returns:
//
//   - Result with Found=true and the optimal Path on success.
//   - Result with Found=false (NotFound) when the goal is unreachable or
//     either endpoint is blocked. This is not an error.
//   - ErrNilGrid, ErrInvalidEndpoint or ErrOptionViolation for invalid input.
//
// Algorithm:
//
//  1. g(start)=0, f(start)=h(start, goal), frontier={start}.
//  2. Extract the frontier cell with minimum f (ties: first inserted).
//  3. If it is the goal, reconstruct the path and stop.
//  4. Close it; for each free neighbour not closed, if g(current)+1 improves
//     its g-cost, record cost and predecessor and insert or re-rank it.
//  5. An empty frontier means NotFound.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V)
func Search(g Grid, start, goal Cell, opts ...Option) (Result, error) {
	s, err := NewStepper(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}
	for {
		if _, ok := s.Step(); !ok {
			break
		}
	}

	return s.Result(), nil
}

// Trace returns the ordered Opened/Closed events of a search as a lazy
// sequence. Every range over the sequence runs a fresh search, so it can be
// consumed any number of times, stopped early, or paced by the consumer.
// Inputs are validated once, up front.
func Trace(g Grid, start, goal Cell, opts ...Option) (iter.Seq[Event], error) {
	if _, err := NewStepper(g, start, goal, opts...); err != nil {
		return nil, err
	}

	return func(yield func(Event) bool) {
		s, err := NewStepper(g, start, goal, opts...)
		if err != nil {
			return
		}
		for {
			st, ok := s.Step()
			for _, e := range st.Events {
				if !yield(e) {
					return
				}
			}
			if !ok {
				return
			}
		}
	}, nil
}
