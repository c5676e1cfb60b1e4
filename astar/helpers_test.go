package astar_test

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const wall = gridgraph.DefaultObstacleValue

// mustGrid builds a GridGraph with the default obstacle value or panics.
func mustGrid(values [][]int) *gridgraph.GridGraph {
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		panic(err)
	}
	return gg
}

// openGrid returns a w×h grid with no walls.
func openGrid(w, h int) *gridgraph.GridGraph {
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
	}
	return mustGrid(values)
}

// randomGrid returns a w×h grid where each cell is a wall with probability
// density, using a fixed seed so runs are reproducible.
func randomGrid(w, h int, density float64, seed int64) *gridgraph.GridGraph {
	r := rand.New(rand.NewSource(seed))
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			if r.Float64() < density {
				values[y][x] = wall
			}
		}
	}
	return mustGrid(values)
}

// randomFreeCell picks a free cell of gg deterministically from r.
func randomFreeCell(gg *gridgraph.GridGraph, r *rand.Rand) gridgraph.Cell {
	for {
		c := gridgraph.Cell{X: r.Intn(gg.Width), Y: r.Intn(gg.Height)}
		if gg.Free(c) {
			return c
		}
	}
}
