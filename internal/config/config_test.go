package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Grid.ObstacleValue)
	assert.Equal(t, 100*time.Millisecond, cfg.GetAnimateInterval())
	assert.Equal(t, 5*time.Second, cfg.GetShutdownTimeout())

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  heuristic: manhattan
  frontier: linear
animate:
  interval: 250ms
server:
  addr: 127.0.0.1:9000
`), 0o644))

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "manhattan", cfg.Search.Heuristic)
	assert.Equal(t, "linear", cfg.Search.Frontier)
	assert.Equal(t, 250*time.Millisecond, cfg.GetAnimateInterval())
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	// untouched sections keep defaults
	assert.Equal(t, 5, cfg.Grid.ObstacleValue)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unterminated"), 0o644))

	_, err := Load(path, "")
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gridpath.yaml")
	cfg := DefaultConfig()
	cfg.Grid.Width = 40
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("strings override file values", func(t *testing.T) {
		t.Setenv("GRIDPATH_HEURISTIC", "manhattan")
		t.Setenv("GRIDPATH_ADDR", ":9999")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "manhattan", cfg.Search.Heuristic)
		assert.Equal(t, ":9999", cfg.Server.Addr)
	})

	t.Run("integers are parsed", func(t *testing.T) {
		t.Setenv("GRIDPATH_OBSTACLE_VALUE", "9")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, 9, cfg.Grid.ObstacleValue)
	})

	t.Run("bad integer is rejected", func(t *testing.T) {
		t.Setenv("GRIDPATH_MAX_CELLS", "lots")

		cfg := DefaultConfig()
		require.ErrorIs(t, cfg.applyEnvOverrides(), ErrInvalidConfig)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		t.Setenv("GRIDPATH_FRONTIER", "")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "heap", cfg.Search.Frontier)
	})
}

func TestLoad_DotEnvFile(t *testing.T) {
	// Register cleanup, then unset so godotenv is allowed to fill it in.
	t.Setenv("GRIDPATH_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("GRIDPATH_LOG_LEVEL"))

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("GRIDPATH_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), env)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"UnknownHeuristic", func(c *Config) { c.Search.Heuristic = "octile" }},
		{"UnknownFrontier", func(c *Config) { c.Search.Frontier = "bucket" }},
		{"BadInterval", func(c *Config) { c.Animate.Interval = "soon" }},
		{"ZeroInterval", func(c *Config) { c.Animate.Interval = "0s" }},
		{"BadShutdown", func(c *Config) { c.Server.ShutdownTimeout = "-1s" }},
		{"ZeroWidth", func(c *Config) { c.Grid.Width = 0 }},
		{"NoCells", func(c *Config) { c.Server.MaxCells = 0 }},
		{"BadFormat", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
