package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
)

func benchmarkSearch(b *testing.B, size int, kind astar.FrontierKind) {
	gg := openGrid(size, size)
	goal := astar.Cell{X: size - 1, Y: size - 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(gg, astar.Cell{}, goal, astar.WithFrontier(kind)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Heap_64(b *testing.B)    { benchmarkSearch(b, 64, astar.FrontierHeap) }
func BenchmarkSearch_Linear_64(b *testing.B)  { benchmarkSearch(b, 64, astar.FrontierLinear) }
func BenchmarkSearch_Heap_256(b *testing.B)   { benchmarkSearch(b, 256, astar.FrontierHeap) }
func BenchmarkSearch_Random_128(b *testing.B) {
	gg := randomGrid(128, 128, 0.25, 42)
	start, goal := astar.Cell{}, astar.Cell{X: 127, Y: 127}
	gg, _ = gg.With(start, 0)
	gg, _ = gg.With(goal, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(gg, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}
