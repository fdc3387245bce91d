// SPDX-License-Identifier: MIT

// Package emd computes the Earth Mover's Distance (optimal transport cost)
// between two discrete distributions under a pairwise cost matrix.
//
// 🚚 What is EMD?
//
//	Given a source distribution a (m weights), a target distribution b
//	(n weights) and costs C (m×n), EMD is the least total cost of moving the
//	mass of a onto b:
//
//	  min Σ_ij C[i][j]·F[i][j]   s.t.  Σ_j F[i][j] = a[i],  Σ_i F[i][j] = b[j],  F ≥ 0
//
//	It is used for histogram and image retrieval, comparing point clouds,
//	and as a loss between probability vectors.
//
// ✨ Pipeline (one Solve call, no branching back):
//   - iteration guard: the cap must be > 0
//   - shape check: costs must be |source| × |target|
//   - value checks: weights ≥ 0 and finite, costs finite
//   - mass balance: target is rescaled in place to the source mass
//   - solver: a single network simplex run (package flow)
//   - classification: optimal → Result, otherwise a typed error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ot/emd"
//
//	src := mat.NewVecDense(2, []float64{0.5, 0.5})
//	dst := mat.NewVecDense(2, []float64{0.5, 0.5})
//	costs := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
//
//	res, err := emd.NewSolver(src, dst, costs).Iterations(10000).Solve()
//	// res.EMD == 0, res.Flow == [[0.5 0] [0 0.5]]
//
// Errors (match with errors.Is / errors.As):
//
//	*IterationsError (ErrInvalidIterations) - cap <= 0
//	ErrNilInput                             - nil argument
//	*DimensionError (ErrDimensionMismatch)  - costs not |source|×|target|
//	ErrInvalidWeight / ErrNonFiniteCost     - bad values
//	ErrZeroTargetMass                       - target sums to 0
//	ErrInfeasible / ErrUnbounded            - solver outcome
//	ErrMaxIterationsReached                 - retry with a larger cap
//	ErrSolverBusy                           - overlapping Solve on one Solver
//
// A status outside the solver's documented set is a broken contract and
// panics with *ContractViolation.
//
// Performance: one simplex run over m·n arcs; each pivot is O(√(m·n) + m + n)
// with the default block search.
package emd
