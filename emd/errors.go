// SPDX-License-Identifier: MIT
// Package emd: sentinel and typed errors.
// Every message is prefixed with "emd: ...". Callers branch with errors.Is
// on the sentinels and errors.As on the typed errors; typed errors unwrap to
// their sentinel.
//
// ERROR PRIORITY (enforced in tests):
// iterations -> nil input -> dimension mismatch -> weights -> costs
// -> target mass -> solver status.

package emd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ot/flow"
)

var (
	// ErrDimensionMismatch: the cost matrix is not |source| × |target|.
	ErrDimensionMismatch = errors.New("emd: dimension mismatch")

	// ErrInvalidIterations: the iteration cap is zero or negative.
	ErrInvalidIterations = errors.New("emd: iterations must be > 0")

	// ErrInfeasible: the solver found no flow meeting the supplies.
	ErrInfeasible = errors.New("emd: problem is infeasible")

	// ErrUnbounded: the solver found a cycle of unbounded negative cost.
	ErrUnbounded = errors.New("emd: problem is unbounded")

	// ErrMaxIterationsReached: the pivot budget ran out before optimality.
	// Retrying with a larger cap is the documented remedy.
	ErrMaxIterationsReached = errors.New("emd: maximum iterations reached")

	// ErrNilInput: a distribution or the cost matrix is nil.
	ErrNilInput = errors.New("emd: nil input")

	// ErrInvalidWeight: a distribution weight is negative, NaN or ±Inf.
	ErrInvalidWeight = errors.New("emd: invalid weight")

	// ErrNonFiniteCost: a cost entry is NaN or ±Inf.
	ErrNonFiniteCost = errors.New("emd: non-finite cost")

	// ErrZeroTargetMass: the target sums to zero and cannot be rescaled.
	ErrZeroTargetMass = errors.New("emd: target distribution has zero mass")

	// ErrSolverBusy: Solve was called while another Solve on the same Solver
	// was still running.
	ErrSolverBusy = errors.New("emd: solver is busy")
)

// DimensionError reports the four observed sizes of a shape mismatch:
// source length, target length and the cost matrix rows and columns.
type DimensionError struct {
	Source, Target int
	Rows, Cols     int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("emd: dimension mismatch: source %d, target %d, costs %d×%d",
		e.Source, e.Target, e.Rows, e.Cols)
}

// Unwrap makes errors.Is(err, ErrDimensionMismatch) hold.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// IterationsError carries the rejected iteration cap.
type IterationsError struct {
	Iterations int
}

func (e *IterationsError) Error() string {
	return fmt.Sprintf("emd: invalid iterations %d: must be > 0", e.Iterations)
}

// Unwrap makes errors.Is(err, ErrInvalidIterations) hold.
func (e *IterationsError) Unwrap() error { return ErrInvalidIterations }

// ContractViolation is the panic value raised when the solver reports a
// status outside its documented set. It is a programming error, never a
// result to handle.
type ContractViolation struct {
	Status flow.Status
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("emd: contract violation: unknown solver status %d", int(e.Status))
}
