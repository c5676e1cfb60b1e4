// Command gridpath finds shortest paths on grids with A*.
//
// Usage:
//
//	gridpath solve --grid maze.txt --start 0,0 --goal 9,9
//	gridpath animate --size 30x20
//	gridpath serve --addr :8080
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest paths on obstacle grids with A*",
		Long: `gridpath finds a shortest 4-connected path between two cells of a grid
with blocked cells, using A* with a Euclidean heuristic and unit step cost.

Grids are text files: whitespace-separated integers, one row per line;
cells equal to the obstacle value (default 5) are walls.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newSolveCmd(a),
		newAnimateCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads configuration and builds the logger.
func (a *app) init(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: a.verbose,
	})
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("cmd", cmd.Name()))

	return nil
}

func (a *app) gridOptions() gridgraph.GridOptions {
	return gridgraph.GridOptions{ObstacleValue: a.cfg.Grid.ObstacleValue}
}

// parseCell parses "x,y".
func parseCell(s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}

	return gridgraph.Cell{X: x, Y: y}, nil
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: must be positive", s)
	}

	return w, h, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no config or logger needed
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gridpath", version)
		},
	}
}
