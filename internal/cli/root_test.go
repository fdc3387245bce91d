package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ot/emd"
	"github.com/katalvlaran/ot/internal/cli/commands"
)

func writeProblem(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const identityProblem = `source: [0.5, 0.5]
target: [0.5, 0.5]
costs:
  - [0, 1]
  - [1, 0]
iterations: 10000
`

func TestSolveTable(t *testing.T) {
	path := writeProblem(t, "p.yaml", identityProblem)

	out, _, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "│ flow │ t0")
	assert.Contains(t, out, "s1")
	assert.Contains(t, out, "0.5")
	assert.Contains(t, out, "EMD: 0\n")
}

func TestSolveJSON(t *testing.T) {
	path := writeProblem(t, "p.json", `{
  "source": [0.3, 0.4, 0.2],
  "target": [0.2, 0.8, 0.0],
  "costs": [[0, 1, 2], [1, 0, 1], [2, 1, 0]]
}`)

	out, _, err := run(t, "solve", path, "--output", "json", "--pivot", "best-eligible")
	require.NoError(t, err)

	var got commands.SolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 0.32, got.EMD, 1e-5)
	require.Len(t, got.Flow, 3)
	require.Len(t, got.Flow[0], 3)
	assert.InDelta(t, 0.72, got.Target[1], 1e-12)
}

func TestSolveErrors(t *testing.T) {
	mismatch := writeProblem(t, "m.yaml", `source: [0.1, 0.3, 0.6]
target: [1.0]
costs:
  - [1, 2, 3]
`)
	_, _, err := run(t, "solve", mismatch)
	require.ErrorIs(t, err, emd.ErrDimensionMismatch)

	capped := writeProblem(t, "c.yaml", `source: [0.1, 0.1, 0.8]
target: [0.5, 0.5]
costs:
  - [0.3, 1.0]
  - [1.5, 0.25]
  - [0.1, 3.0]
`)
	_, _, err = run(t, "solve", capped, "--iterations", "1")
	require.ErrorIs(t, err, emd.ErrMaxIterationsReached)

	_, _, err = run(t, "solve", capped, "--iterations=-3")
	require.ErrorIs(t, err, emd.ErrInvalidIterations)

	ragged := writeProblem(t, "r.yaml", "source: [1]\ntarget: [1, 1]\ncosts:\n  - [1, 2]\n  - [1]\n")
	_, _, err = run(t, "solve", ragged)
	require.ErrorIs(t, err, commands.ErrProblem)

	_, _, err = run(t, "solve", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, commands.ErrProblem)

	_, _, err = run(t, "solve", capped, "--pivot", "steepest")
	require.Error(t, err)
}

func TestSolveMetricsFile(t *testing.T) {
	path := writeProblem(t, "p.yaml", identityProblem)
	metrics := filepath.Join(t.TempDir(), "emd.prom")

	_, _, err := run(t, "solve", path, "--metrics-file", metrics)
	require.NoError(t, err)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `emd_solves_total{outcome="optimal"} 1`)
	assert.Contains(t, string(data), "emd_solve_duration_seconds_count 1")
	assert.Contains(t, string(data), "emd_distance 0")
}

func TestSolveDebugLogging(t *testing.T) {
	path := writeProblem(t, "p.yaml", identityProblem)

	_, stderr, err := run(t, "solve", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "solver finished")
	assert.Contains(t, stderr, "pivot=block-search")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "emd v"+Version)
}
