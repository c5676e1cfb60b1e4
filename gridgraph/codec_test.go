package gridgraph_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestParse_Format verifies whitespace handling and blank-line skipping.
func TestParse_Format(t *testing.T) {
	src := "0 0 5\n\n  0\t5 0  \n"
	gg, err := gridgraph.Parse(strings.NewReader(src), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.Equal(t, [][]int{{0, 0, 5}, {0, 5, 0}}, gg.Values())
}

// TestParse_Errors covers bad tokens, ragged rows and empty input.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"BadToken", "0 x 0\n", gridgraph.ErrParse},
		{"Ragged", "0 0\n0\n", gridgraph.ErrNonRectangular},
		{"Empty", "\n\n", gridgraph.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(strings.NewReader(tc.src), gridgraph.DefaultGridOptions())
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestLoadEncode_RoundTrip writes a grid to disk, loads it back and compares.
func TestLoadEncode_RoundTrip(t *testing.T) {
	values := [][]int{
		{0, 0, 0, 5},
		{5, 5, 0, 5},
		{0, 0, 0, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, gridgraph.Encode(&buf, values))
	assert.Equal(t, "0 0 0 5\n5 5 0 5\n0 0 0 0\n", buf.String())

	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	gg, err := gridgraph.Load(path, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, values, gg.Values())

	_, err = gridgraph.Load(filepath.Join(t.TempDir(), "missing.txt"), gridgraph.DefaultGridOptions())
	assert.Error(t, err)
}
