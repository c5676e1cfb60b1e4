package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseValues reads the textual grid format: integers separated by
// whitespace, one row per line. Blank lines are ignored. The result is not
// checked for shape; NewGridGraph does that.
func ParseValues(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrParse, line, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return rows, nil
}

// Parse reads a textual grid and builds a GridGraph from it.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	values, err := ParseValues(r)
	if err != nil {
		return nil, err
	}

	return NewGridGraph(values, opts)
}

// Load opens the file at path and parses it as a textual grid.
func Load(path string, opts GridOptions) (*GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open grid: %w", err)
	}
	defer f.Close()

	gg, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return gg, nil
}

// Encode writes values in the textual grid format accepted by ParseValues.
func Encode(w io.Writer, values [][]int) error {
	bw := bufio.NewWriter(w)
	for _, row := range values {
		for x, v := range row {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
