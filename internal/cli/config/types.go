// Package config provides configuration management for the emd CLI.
//
// Values are layered with koanf; see LoadConfig for the precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ot/flow"
)

// Defaults applied before any file, environment variable or flag.
const (
	DefaultPivot    = "block-search"
	DefaultOutput   = OutputTable
	DefaultLogLevel = "warn"
	EnvPrefix       = "EMD_"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// ErrInvalidConfig is returned when a loaded value is not usable.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved CLI configuration.
type Config struct {
	// Iterations overrides the pivot budget; 0 defers to the problem file
	// and then to emd.DefaultIterations.
	Iterations  int    `koanf:"iterations"`
	Pivot       string `koanf:"pivot"`
	Output      string `koanf:"output"`
	LogLevel    string `koanf:"log_level"`
	MetricsFile string `koanf:"metrics_file"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `koanf:"-"`
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.PivotRule(); err != nil {
		return fmt.Errorf("%w: pivot: %w", ErrInvalidConfig, err)
	}
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: output %q (want table|json)", ErrInvalidConfig, c.Output)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// PivotRule parses the configured pivot rule.
func (c *Config) PivotRule() (flow.PivotRule, error) {
	return flow.ParsePivotRule(c.Pivot)
}

// Level parses the configured log level (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.LogLevel))

	return lvl, err
}
