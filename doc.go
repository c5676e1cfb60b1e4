// Package gridpath finds shortest paths on 2-D grids with blocked cells.
//
// 🚀 What is gridpath?
//
//	An A* pathfinder over 4-connected grids with unit step cost and a
//	Euclidean heuristic, plus the tools around it:
//		• Grid model: parsing, regions, BFS distances, minimum wall breaches
//		• Search: deterministic A*, resumable stepping, lazy event traces
//		• Rendering: coloured or plain boards of explored cells and paths
//		• Front ends: a CLI, an interactive animator and an HTTP API
//
// Packages:
//
//	astar/             A* search, Stepper, Trace, heap and linear frontiers
//	gridgraph/         Cell, GridGraph, text codec, regions, Distance, MinimumBreach
//	internal/render/   markers and board rendering
//	internal/tui/      step-by-step animation editor
//	internal/server/   JSON search API with Prometheus metrics
//	internal/config/   YAML, .env and GRIDPATH_* configuration
//	cmd/gridpath/      solve, animate, serve, version
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S * .
//	# * #
//	G * .
//
// A grid file holds whitespace-separated integers, one row per line; cells
// equal to the obstacle value (5 by default) are walls.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
