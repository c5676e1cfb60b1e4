package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func gapGrid(t *testing.T) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.Parse(strings.NewReader("0 0 0\n5 0 5\n0 0 0\n"), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

func TestMarkerCodes(t *testing.T) {
	want := map[Marker]int{Free: 0, Wall: 1, Start: 2, Goal: 2, Path: 3, Open: 4, Closed: 5}
	for m, code := range want {
		assert.Equal(t, code, m.Code(), m.String())
	}
	assert.Equal(t, "unknown", Marker(99).String())
}

func TestOverlayPlain(t *testing.T) {
	gg := gapGrid(t)
	start, goal := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 2}
	res, err := astar.Search(gg, start, goal, astar.WithTrace())
	require.NoError(t, err)

	b := Overlay(gg, start, goal, res.Events, res.Path)
	got := Plain().Render(b)
	want := strings.Join([]string{
		"S*o",
		"#*#",
		"G*o",
	}, "\n")
	assert.Equal(t, want, got)
	assert.Equal(t, 3, b.Count(Path))
}

func TestApplyKeepsEndpoints(t *testing.T) {
	gg := gapGrid(t)
	start, goal := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 2}
	b := NewBoard(gg, start, goal)

	b.Apply(astar.Event{Kind: astar.EventClosed, Cell: start})
	b.Apply(astar.Event{Kind: astar.EventOpened, Cell: gridgraph.Cell{X: 1, Y: 0}})
	b.Apply(astar.Event{Kind: astar.EventClosed, Cell: goal})

	assert.Equal(t, Start, b.At(start))
	assert.Equal(t, Goal, b.At(goal))
	assert.Equal(t, Open, b.At(gridgraph.Cell{X: 1, Y: 0}))
	assert.Equal(t, Wall, b.At(gridgraph.Cell{X: -1, Y: 0}), "outside reads as wall")
}

func TestRenderCursorPlain(t *testing.T) {
	gg := gapGrid(t)
	b := NewBoard(gg, gridgraph.Cell{}, gridgraph.Cell{X: 2, Y: 2})
	got := Plain().RenderCursor(b, gridgraph.Cell{X: 1, Y: 1})
	assert.Equal(t, "S..\n#@#\n..G", got)
}

func TestWriteCodes(t *testing.T) {
	gg := gapGrid(t)
	start, goal := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 2}
	res, err := astar.Search(gg, start, goal, astar.WithTrace())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCodes(&buf, Overlay(gg, start, goal, res.Events, res.Path)))
	assert.Equal(t, "2 3 4\n1 3 1\n2 3 4\n", buf.String())
}

func TestStyledRendererShape(t *testing.T) {
	gg := gapGrid(t)
	b := NewBoard(gg, gridgraph.Cell{}, gridgraph.Cell{X: 2, Y: 2})
	out := New().Render(b)
	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.Contains(t, New().Legend(), "closed")
	assert.Equal(t, ". free  # wall  S start  G goal  o open  x closed  * path", Plain().Legend())
}
