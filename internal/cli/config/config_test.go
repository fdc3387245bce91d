package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	flags.Int("iterations", 0, "pivot budget")
	flags.String("pivot", "", "pivot rule")
	flags.StringP("output", "o", "", "output format")
	flags.String("log-level", "", "log level")
	flags.String("metrics-file", "", "metrics textfile")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Iterations)
	assert.Equal(t, DefaultPivot, cfg.Pivot)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `iterations: 500
pivot: best-eligible
output: json
log_level: debug
metrics_file: /tmp/emd.prom
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Iterations)
	assert.Equal(t, "best-eligible", cfg.Pivot)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/emd.prom", cfg.MetricsFile)
	assert.Equal(t, path, cfg.ConfigFile)
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override the file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	path := writeConfig(t, "iterations: 500\npivot: best-eligible\n")
	t.Setenv("EMD_ITERATIONS", "700")
	t.Setenv("EMD_LOG_LEVEL", "info")

	cfg, err := LoadConfig(path, newFlags())
	require.NoError(t, err)

	assert.Equal(t, 700, cfg.Iterations, "env var should override config file")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "best-eligible", cfg.Pivot, "unset env keeps the file value")
}

// TestLoadConfig_FlagPrecedence tests that explicitly set flags win.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	path := writeConfig(t, "iterations: 500\noutput: json\n")
	t.Setenv("EMD_ITERATIONS", "700")

	flags := newFlags()
	require.NoError(t, flags.Set("iterations", "900"))
	require.NoError(t, flags.Set("metrics-file", "out.prom"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 900, cfg.Iterations, "flag value should override config file and env var")
	assert.Equal(t, "out.prom", cfg.MetricsFile, "kebab-case flag maps to snake_case key")
	assert.Equal(t, OutputJSON, cfg.Output, "unset flag falls back to the file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"pivot":     "pivot: steepest\n",
		"output":    "output: xml\n",
		"log level": "log_level: loud\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content), nil)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	def := FromContext(ctx)
	assert.Equal(t, DefaultPivot, def.Pivot)
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Pivot: "first-eligible", Output: OutputJSON, LogLevel: "debug"}
	var buf bytes.Buffer
	logger := NewLogger(&buf, cfg)

	ctx = WithLogger(WithConfig(ctx, cfg), logger)
	assert.Same(t, cfg, FromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))

	GetLogger(ctx).Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
