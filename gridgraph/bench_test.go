package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid builds a W×H grid where roughly a quarter of the cells are walls.
func randomGrid(w, h int, seed int64) *gridgraph.GridGraph {
	r := rand.New(rand.NewSource(seed))
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			if r.Intn(4) == 0 {
				values[y][x] = gridgraph.DefaultObstacleValue
			}
		}
	}
	gg, _ := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())

	return gg
}

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 500×500 grid.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	gg := randomGrid(500, 500, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkMinimumBreach measures a corner-to-corner 0-1 BFS on a 500×500 grid.
func BenchmarkMinimumBreach(b *testing.B) {
	gg := randomGrid(500, 500, 7)
	from, to := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 499, Y: 499}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.MinimumBreach(from, to)
	}
}
