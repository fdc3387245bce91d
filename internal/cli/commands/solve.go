package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ot/emd"
	"github.com/katalvlaran/ot/internal/cli/config"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Compute the Earth Mover's Distance of a problem file",
		Long: `Compute the Earth Mover's Distance between the source and target
distributions of a YAML or JSON problem file and print the optimal flow.

The target is rescaled to the source mass before solving; the printed
target is the rescaled one. The pivot budget is taken from --iterations
(or EMD_ITERATIONS / the config file), then from the problem file, then
defaults to 100000.`,
		Example: `  # Solve and print a table
  emd solve problem.yaml

  # JSON output with a tighter budget
  emd solve problem.json --output json --iterations 5000

  # Record Prometheus textfile metrics
  emd solve problem.yaml --metrics-file /var/lib/node_exporter/emd.prom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0])
		},
	}

	return cmd
}

func runSolve(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	p, err := LoadProblem(path)
	if err != nil {
		return err
	}
	source, target, costs, err := p.Matrices()
	if err != nil {
		return err
	}
	rule, err := cfg.PivotRule()
	if err != nil {
		return err
	}
	iterations := resolveIterations(cfg, p)
	logger.Info("solving", "problem", path, "iterations", iterations, "pivot", rule.String())

	start := time.Now()
	res, err := emd.NewSolver(source, target, costs).
		Iterations(iterations).
		PivotRule(rule).
		Logger(logger).
		Solve()
	elapsed := time.Since(start)

	if cfg.MetricsFile != "" {
		m := newSolveMetrics()
		m.observe(res, err, elapsed)
		if werr := m.write(cfg.MetricsFile); werr != nil {
			logger.Warn("metrics not written", "file", cfg.MetricsFile, "error", werr)
		}
	}
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	logger.Info("solved", "emd", res.EMD, "iterations", res.Iterations, "elapsed", elapsed)

	return renderSolve(cmd.OutOrStdout(), cfg.Output, newSolveOutput(res, target))
}

// resolveIterations picks the pivot budget: configuration, then the
// problem file, then emd.DefaultIterations.
func resolveIterations(cfg *config.Config, p *Problem) int {
	switch {
	case cfg.Iterations != 0:
		return cfg.Iterations
	case p.Iterations != 0:
		return p.Iterations
	default:
		return emd.DefaultIterations
	}
}
