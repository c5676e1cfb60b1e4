// Package astar finds shortest paths between two cells of an obstacle grid
// with A*: a best-first search ranked by f = g + h, where g is the known cost
// from the start and h is a heuristic estimate of the remaining cost.
//
// Overview:
//
//   - Movement is 4-connected (left, right, up, down) and every step between
//     two free cells costs exactly 1.
//   - The default heuristic is the Euclidean distance to the goal. It never
//     overestimates the remaining cost (admissible) and obeys the triangle
//     inequality across edges (consistent), so the returned path is optimal.
//   - The frontier is an indexed binary heap ordered by f-cost, then by
//     insertion sequence: among equal f-costs the cell discovered first is
//     expanded first. This rule fixes WHICH optimal path is returned when
//     several exist, and it reproduces a linear "first minimum" scan exactly.
//
// Entry points:
//
//   - Search:     run to completion and get a Result.
//   - NewStepper: advance one frontier extraction + relaxation at a time, for
//     drivers that pace, pause or abort a search (animations, debuggers).
//   - Trace:      a lazy, finite, restartable iter.Seq of Opened/Closed events.
//
// Closed-set assumption:
//
//	A cell that has been expanded is never re-opened. This is sound only
//	because the step cost is uniform and the heuristic is consistent: the first
//	time a cell is extracted its g-cost is already minimal. Supplying a
//	heuristic through WithHeuristic that is not consistent voids the
//	optimality guarantee.
//
// Outcomes and errors:
//
//   - Result.Found == false is the NotFound outcome: the goal is unreachable.
//     It is a normal result, not an error.
//   - A blocked start or goal (in bounds) yields NotFound without exploring.
//   - ErrNilGrid:          the grid is nil.
//   - ErrInvalidEndpoint:  start or goal lies outside the grid.
//   - ErrOptionViolation:  an invalid Option was supplied.
//
// Complexity:
//
//   - Time:  O(E log V) with the heap frontier, O(V²) with FrontierLinear,
//     where V is the number of free cells and E ≤ 4V.
//   - Space: O(V) for g-costs, predecessors, the closed set and the frontier.
//
// Concurrency:
//
//	Search keeps all state local to one call and holds no package-level
//	mutable state, so concurrent searches over the same grid are safe as long
//	as the grid itself is not mutated. A Stepper is not safe for concurrent use.
package astar
