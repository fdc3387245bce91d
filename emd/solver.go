// SPDX-License-Identifier: MIT

package emd

import (
	"log/slog"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ot/flow"
)

// DefaultIterations is the pivot budget used when none is set.
const DefaultIterations = 100000

// Result is the outcome of a successful solve.
//   - Flow: |source| × |target| transport plan.
//   - EMD:  Σ Flow ⊙ costs.
//   - Iterations: pivots performed by the solver.
type Result struct {
	Flow       *mat.Dense
	EMD        float64
	Iterations int
}

// Solver configures and runs the EMD pipeline over caller-owned data.
//
// The source, target and costs are borrowed for the Solver's lifetime;
// Solve rescales target in place. A Solver rejects overlapping Solve calls
// with ErrSolverBusy rather than letting two runs touch the same buffers.
//
// Example:
//
//	res, err := emd.NewSolver(src, dst, costs).Iterations(5000).Solve()
type Solver struct {
	source, target *mat.VecDense
	costs          *mat.Dense

	iterations int
	rule       flow.PivotRule
	logger     *slog.Logger

	busy atomic.Bool
}

// NewSolver returns a Solver over the given data with DefaultIterations,
// the BlockSearch pivot rule and a discarding logger.
func NewSolver(source, target *mat.VecDense, costs *mat.Dense) *Solver {
	return &Solver{
		source:     source,
		target:     target,
		costs:      costs,
		iterations: DefaultIterations,
		rule:       flow.BlockSearch,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// Iterations sets the pivot budget. Values <= 0 are reported by Solve.
func (s *Solver) Iterations(n int) *Solver {
	s.iterations = n
	return s
}

// PivotRule selects the entering-arc rule of the simplex.
func (s *Solver) PivotRule(r flow.PivotRule) *Solver {
	s.rule = r
	return s
}

// Logger sets the logger for stage-level debug records; nil restores the
// discarding logger.
func (s *Solver) Logger(l *slog.Logger) *Solver {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.logger = l
	return s
}

// Solve runs the pipeline once.
//
// Steps:
//  1. Reject a non-positive cap (*IterationsError) and overlapping calls
//     (ErrSolverBusy).
//  2. Check shapes, weights and costs.
//  3. Rescale the target to the source mass (Balance).
//  4. Invoke the solver through Transport.
//  5. Classify the status; only StatusOptimal yields a Result.
func (s *Solver) Solve() (Result, error) {
	// 1) Guards
	if s.iterations <= 0 {
		return Result{}, &IterationsError{Iterations: s.iterations}
	}
	if !s.busy.CompareAndSwap(false, true) {
		return Result{}, ErrSolverBusy
	}
	defer s.busy.Store(false)

	log := s.logger

	// 2) Structural and value checks
	if err := ValidateShapes(s.source, s.target, s.costs); err != nil {
		return Result{}, err
	}
	if err := validateWeights("source", s.source); err != nil {
		return Result{}, err
	}
	if err := validateWeights("target", s.target); err != nil {
		return Result{}, err
	}
	if err := validateCosts(s.costs); err != nil {
		return Result{}, err
	}
	m, n := s.costs.Dims()
	log.Debug("inputs validated", "sources", m, "targets", n)

	// 3) Mass balance
	before := total(s.target)
	if err := Balance(s.source, s.target); err != nil {
		return Result{}, err
	}
	log.Debug("target rebalanced", "mass", total(s.source), "scale", total(s.source)/before)

	// 4) Solver
	plan, err := Transport(s.source, s.target, s.costs, s.iterations, s.rule)
	if err != nil {
		return Result{}, err
	}
	log.Debug("solver finished",
		"status", plan.Status.String(),
		"iterations", plan.Iterations,
		"cost", plan.Cost,
		"pivot", s.rule.String(),
	)

	// 5) Outcome
	if err = Classify(plan.Status); err != nil {
		return Result{}, err
	}

	return Result{Flow: plan.Flow, EMD: plan.Cost, Iterations: plan.Iterations}, nil
}

// EMD computes the Earth Mover's Distance between source and target under
// costs with the given pivot budget. It is shorthand for
// NewSolver(source, target, costs).Iterations(iterations).Solve().
func EMD(source, target *mat.VecDense, costs *mat.Dense, iterations int) (Result, error) {
	return NewSolver(source, target, costs).Iterations(iterations).Solve()
}
