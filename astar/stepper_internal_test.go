package astar

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func seededGrid(t *testing.T, w, h int, seed int64) (*gridgraph.GridGraph, *rand.Rand) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			if r.Float64() < 0.3 {
				values[y][x] = gridgraph.DefaultObstacleValue
			}
		}
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	return gg, r
}

func freeCell(gg *gridgraph.GridGraph, r *rand.Rand) Cell {
	for {
		c := Cell{X: r.Intn(gg.Width), Y: r.Intn(gg.Height)}
		if gg.Free(c) {
			return c
		}
	}
}

// TestGCostNeverIncreases snapshots g-costs after every step and checks no
// recorded cost ever goes up.
func TestGCostNeverIncreases(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		gg, r := seededGrid(t, 14, 10, seed)
		s, err := NewStepper(gg, freeCell(gg, r), freeCell(gg, r))
		require.NoError(t, err)

		prev := map[Cell]int{}
		for {
			_, ok := s.Step()
			for c, g := range prev {
				assert.LessOrEqual(t, s.gCost[c], g, "seed %d: g(%s) increased", seed, c)
			}
			prev = make(map[Cell]int, len(s.gCost))
			for c, g := range s.gCost {
				prev[c] = g
			}
			if !ok {
				break
			}
		}
	}
}

// TestClosedCheckOrderIsIrrelevant runs both relaxation orders side by side:
// results match and no closed cell is ever improvable.
func TestClosedCheckOrderIsIrrelevant(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		gg, r := seededGrid(t, 16, 16, seed)
		start, goal := freeCell(gg, r), freeCell(gg, r)

		first, err := NewStepper(gg, start, goal, WithTrace())
		require.NoError(t, err)
		last, err := NewStepper(gg, start, goal, WithTrace())
		require.NoError(t, err)
		last.check = closedLast

		for first.Step(); !first.Done(); first.Step() {
		}
		for last.Step(); !last.Done(); last.Step() {
		}

		assert.Equal(t, first.Result(), last.Result(), "seed %d", seed)
		assert.Zero(t, last.reopenAttempts, "seed %d: a closed cell was improvable", seed)
	}
}

func TestFrontierTieBreak(t *testing.T) {
	for _, kind := range []FrontierKind{FrontierHeap, FrontierLinear} {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFrontier(kind, 4)
			a, b, c, d := Cell{X: 0}, Cell{X: 1}, Cell{X: 2}, Cell{X: 3}
			f.push(a, 3)
			f.push(b, 2)
			f.push(c, 2)
			f.push(d, 5)
			// d moves level with b and c but keeps its later sequence.
			f.update(d, 2)
			require.True(t, f.contains(d))

			var got []Cell
			for f.Len() > 0 {
				got = append(got, f.popMin())
			}
			assert.Equal(t, []Cell{b, c, d, a}, got)
			assert.False(t, f.contains(a))
		})
	}
}

func TestStepperStepping(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{0, 0, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	s, err := NewStepper(gg, Cell{X: 0}, Cell{X: 2})
	require.NoError(t, err)

	st, ok := s.Step()
	require.True(t, ok)
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, []Event{
		{Kind: EventOpened, Cell: Cell{X: 0}, Step: 0},
		{Kind: EventClosed, Cell: Cell{X: 0}, Step: 1},
		{Kind: EventOpened, Cell: Cell{X: 1}, Step: 1},
	}, st.Events)

	_, ok = s.Step()
	require.True(t, ok)
	st, ok = s.Step()
	require.True(t, ok)
	assert.True(t, st.Done)
	assert.True(t, st.Found)
	assert.Equal(t, Cell{X: 2}, st.Current)

	st, ok = s.Step()
	assert.False(t, ok, "a finished stepper does nothing")
	assert.True(t, st.Done)
	assert.Equal(t, 3, s.Steps())
	assert.Equal(t, Path{{X: 0}, {X: 1}, {X: 2}}, s.Result().Path)
}
