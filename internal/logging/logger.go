// Package logging builds the zap loggers used by the gridpath binaries.
// Library packages never log; only commands, the TUI launcher and the HTTP
// server do.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownFormat is returned for an output format other than json or console.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Options selects level and encoding.
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // json, console
	Verbose bool   // forces debug level
}

// New builds a logger. json uses zap's production config, console its
// development config; both write to stderr.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch opts.Format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// ParseLevel maps a level name to a zapcore.Level; the empty string is info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return l, fmt.Errorf("logging: %w", err)
	}

	return l, nil
}
