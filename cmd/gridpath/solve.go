package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/render"
)

type solveFlags struct {
	grid      string
	start     string
	goal      string
	heuristic string
	frontier  string
	trace     bool
	plain     bool
	numeric   bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a shortest path on a grid file",
		Long: `Reads a grid, searches from --start to --goal and prints the grid with
explored cells and the path. When no path exists, prints the fewest walls
that would have to be cleared. Both outcomes exit with status 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.grid, "grid", "g", "", "grid file (required)")
	cmd.Flags().StringVar(&f.start, "start", "", "start cell x,y (required)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "goal cell x,y (required)")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "euclidean or manhattan (default from config)")
	cmd.Flags().StringVar(&f.frontier, "frontier", "", "heap or linear (default from config)")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print every open/closed event")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "ASCII output without colours")
	cmd.Flags().BoolVar(&f.numeric, "numeric", false, "print the board as numeric cell codes")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, f *solveFlags) error {
	start, err := parseCell(f.start)
	if err != nil {
		return err
	}
	goal, err := parseCell(f.goal)
	if err != nil {
		return err
	}
	gg, err := gridgraph.Load(f.grid, a.gridOptions())
	if err != nil {
		return err
	}

	if f.heuristic != "" {
		a.cfg.Search.Heuristic = f.heuristic
	}
	if f.frontier != "" {
		a.cfg.Search.Frontier = f.frontier
	}
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return err
	}
	opts = append(opts, astar.WithTrace())

	t0 := time.Now()
	res, err := astar.Search(gg, start, goal, opts...)
	if err != nil {
		return err
	}
	a.logger.Debug("search finished",
		zap.String("grid", f.grid),
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Bool("found", res.Found),
		zap.Int("expanded", res.Expanded),
		zap.Duration("took", time.Since(t0)))

	out := cmd.OutOrStdout()
	board := render.Overlay(gg, start, goal, res.Events, res.Path)
	if f.numeric {
		if err := render.WriteCodes(out, board); err != nil {
			return err
		}
	} else {
		r := render.New()
		if f.plain {
			r = render.Plain()
		}
		fmt.Fprintln(out, r.Render(board))
		fmt.Fprintln(out, r.Legend())
	}
	fmt.Fprintln(out)

	if f.trace {
		writeTrace(out, res.Events)
	}

	if res.Found {
		fmt.Fprintf(out, "found: %d moves, %d cells expanded\n", res.Cost, res.Expanded)
		fmt.Fprintf(out, "path: %s\n", joinCells(res.Path))
		return nil
	}

	fmt.Fprintf(out, "no path: %d cells expanded\n", res.Expanded)
	if !gg.Free(start) || !gg.Free(goal) {
		fmt.Fprintln(out, "start or goal is a wall")
		return nil
	}
	walls, err := gg.BreachWalls(start, goal)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "clear %d wall(s) to connect: %s\n", len(walls), joinCells(walls))

	return nil
}

func writeTrace(w io.Writer, events []astar.Event) {
	for _, e := range events {
		fmt.Fprintf(w, "%4d %-6s %s\n", e.Step, e.Kind, e.Cell)
	}
}

func joinCells(cells []gridgraph.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
