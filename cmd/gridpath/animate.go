package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/tui"
)

type animateFlags struct {
	grid     string
	size     string
	start    string
	goal     string
	interval time.Duration
}

func newAnimateCmd(a *app) *cobra.Command {
	f := &animateFlags{}
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Edit a grid and watch the search step by step",
		Long: `Opens an interactive editor. Move with the arrow keys or hjkl, set the
start with s and the goal with g, toggle walls with x, and press space to
animate the search. p pauses, n steps while paused, c clears, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.editor(cmd, f)
			if err != nil {
				return err
			}
			a.logger.Debug("starting editor")
			return tui.Run(m)
		},
	}
	cmd.Flags().StringVarP(&f.grid, "grid", "g", "", "grid file to start from")
	cmd.Flags().StringVar(&f.size, "size", "", "blank grid size WxH (default from config)")
	cmd.Flags().StringVar(&f.start, "start", "", "start cell x,y (default bottom-left)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "goal cell x,y (default top-right)")
	cmd.Flags().DurationVar(&f.interval, "interval", 0, "delay between steps (default from config)")

	return cmd
}

// editor builds the TUI model from flags and config.
func (a *app) editor(cmd *cobra.Command, f *animateFlags) (tui.Model, error) {
	var (
		gg  *gridgraph.GridGraph
		err error
	)
	if f.grid != "" {
		gg, err = gridgraph.Load(f.grid, a.gridOptions())
	} else {
		w, h := a.cfg.Grid.Width, a.cfg.Grid.Height
		if f.size != "" {
			if w, h, err = parseSize(f.size); err != nil {
				return tui.Model{}, err
			}
		}
		gg, err = gridgraph.NewBlankGrid(w, h, a.gridOptions())
	}
	if err != nil {
		return tui.Model{}, err
	}

	start := gridgraph.Cell{X: 0, Y: gg.Height - 1}
	goal := gridgraph.Cell{X: gg.Width - 1, Y: 0}
	if f.start != "" {
		if start, err = parseCell(f.start); err != nil {
			return tui.Model{}, err
		}
	}
	if f.goal != "" {
		if goal, err = parseCell(f.goal); err != nil {
			return tui.Model{}, err
		}
	}

	interval := a.cfg.GetAnimateInterval()
	if cmd.Flags().Changed("interval") && f.interval > 0 {
		interval = f.interval
	}
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return tui.Model{}, err
	}
	r := render.Plain()
	if a.cfg.Animate.Color {
		r = render.New()
	}
	a.logger.Debug("editor",
		zap.Int("width", gg.Width),
		zap.Int("height", gg.Height),
		zap.Duration("interval", interval))

	return tui.New(gg, start, goal, tui.Options{
		Interval:      interval,
		Renderer:      r,
		SearchOptions: opts,
	}), nil
}
