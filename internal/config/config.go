// Package config loads gridpath settings from a YAML file, an optional .env
// file and GRIDPATH_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "gridpath.yaml"

// Config holds all gridpath configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Grid    GridConfig    `yaml:"grid"`
	Animate AnimateConfig `yaml:"animate"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig selects the search variant.
type SearchConfig struct {
	Heuristic string `yaml:"heuristic"` // euclidean, manhattan
	Frontier  string `yaml:"frontier"`  // heap, linear
}

// GridConfig describes how grids are read and the default editor size.
type GridConfig struct {
	ObstacleValue int `yaml:"obstacle_value"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
}

// AnimateConfig configures the interactive animation.
type AnimateConfig struct {
	Interval string `yaml:"interval"`
	Color    bool   `yaml:"color"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	GinMode         string `yaml:"gin_mode"` // debug, release, test
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	MaxCells        int    `yaml:"max_cells"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Heuristic: "euclidean",
			Frontier:  "heap",
		},
		Grid: GridConfig{
			ObstacleValue: 5,
			Width:         16,
			Height:        12,
		},
		Animate: AnimateConfig{
			Interval: "100ms",
			Color:    true,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			GinMode:         "release",
			ShutdownTimeout: "5s",
			MaxCells:        1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. The given env files (".env" when none are named) are loaded into
// the process environment first if present; variables already set win. Then
// GRIDPATH_* variables override file values.
func Load(path string, envFiles ...string) (*Config, error) {
	loadEnvFiles(envFiles...)

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFiles loads each readable file, skipping missing ones.
func loadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies GRIDPATH_* environment variables.
func (c *Config) applyEnvOverrides() error {
	strs := map[string]*string{
		"GRIDPATH_HEURISTIC":        &c.Search.Heuristic,
		"GRIDPATH_FRONTIER":         &c.Search.Frontier,
		"GRIDPATH_ANIMATE_INTERVAL": &c.Animate.Interval,
		"GRIDPATH_ADDR":             &c.Server.Addr,
		"GRIDPATH_GIN_MODE":         &c.Server.GinMode,
		"GRIDPATH_LOG_LEVEL":        &c.Logging.Level,
		"GRIDPATH_LOG_FORMAT":       &c.Logging.Format,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"GRIDPATH_OBSTACLE_VALUE": &c.Grid.ObstacleValue,
		"GRIDPATH_MAX_CELLS":      &c.Server.MaxCells,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
		}
		*dst = n
	}

	return nil
}

// Validate checks that every named option is known and every duration parses.
func (c *Config) Validate() error {
	if _, err := astar.HeuristicByName(c.Search.Heuristic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := astar.FrontierByName(c.Search.Frontier); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for name, d := range map[string]string{
		"animate.interval":        c.Animate.Interval,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		v, err := time.ParseDuration(d)
		if err != nil || v <= 0 {
			return fmt.Errorf("%w: %s %q is not a positive duration", ErrInvalidConfig, name, d)
		}
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Server.MaxCells <= 0 {
		return fmt.Errorf("%w: server.max_cells must be positive", ErrInvalidConfig)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q (valid: json, console)", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// SearchOptions converts the search section into astar options.
func (c *Config) SearchOptions() ([]astar.Option, error) {
	h, err := astar.HeuristicByName(c.Search.Heuristic)
	if err != nil {
		return nil, err
	}
	k, err := astar.FrontierByName(c.Search.Frontier)
	if err != nil {
		return nil, err
	}

	return []astar.Option{astar.WithHeuristic(h), astar.WithFrontier(k)}, nil
}

// GetAnimateInterval parses Animate.Interval, falling back to 100ms.
func (c *Config) GetAnimateInterval() time.Duration {
	if d, err := time.ParseDuration(c.Animate.Interval); err == nil && d > 0 {
		return d
	}
	return 100 * time.Millisecond
}

// GetShutdownTimeout parses Server.ShutdownTimeout, falling back to 5s.
func (c *Config) GetShutdownTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Server.ShutdownTimeout); err == nil && d > 0 {
		return d
	}
	return 5 * time.Second
}
