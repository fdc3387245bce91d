// SPDX-License-Identifier: MIT

package emd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ot/flow"
)

// Plan is everything the solver returns for one invocation.
//
// Flow is |source| × |target|; Alpha and Beta are the source-side and
// target-side dual potentials. Flow, Cost and the potentials are filled for
// StatusOptimal and StatusMaxIterReached and are zero otherwise.
type Plan struct {
	Flow       *mat.Dense
	Cost       float64
	Alpha      *mat.VecDense
	Beta       *mat.VecDense
	Status     flow.Status
	Iterations int
}

// Transport is the single seam between gonum data and the solver buffers.
//
// Steps:
//  1. An empty source or target (IsEmpty) is reallocated in place to the
//     cost matrix size and filled with 1/len per entry.
//  2. Shapes are checked (ValidateShapes).
//  3. Inputs are laid out as contiguous row-major slices; strided views are
//     copied, contiguous storage is read directly (the solver only reads).
//  4. Output buffers are allocated and flow.Transport is invoked once with
//     maxIter as its pivot budget (maxIter <= 0: unlimited) and rule.
//
// The error only reports misuse (nil, shape, non-finite cost, buffer
// contract); a solver outcome is reported through Plan.Status, never as an
// error. The inputs are expected to be balanced (see Balance).
func Transport(source, target *mat.VecDense, costs *mat.Dense, maxIter int, rule flow.PivotRule) (Plan, error) {
	if source == nil || target == nil || costs == nil {
		return Plan{}, ErrNilInput
	}

	// 1) Uniform defaults
	r, c := costs.Dims()
	fillUniform(source, r)
	fillUniform(target, c)

	// 2) Shapes
	if err := ValidateShapes(source, target, costs); err != nil {
		return Plan{}, err
	}
	m, n := r, c

	// 3) Input buffers
	supply := contiguous(source)
	demand := contiguous(target)
	cost := rowMajor(costs)

	// 4) Output buffers + single invocation
	out := flow.NewTransportPlan(m, n)
	opts := flow.DefaultOptions()
	opts.MaxIterations = maxIter
	opts.Pivot = rule
	status, err := flow.Transport(m, n, supply, demand, cost, out, opts)
	if err != nil {
		return Plan{}, fmt.Errorf("emd: transport: %w", err)
	}

	return Plan{
		Flow:       newDense(m, n, out.Flow),
		Cost:       out.Cost,
		Alpha:      newVec(out.Alpha),
		Beta:       newVec(out.Beta),
		Status:     status,
		Iterations: out.Iterations,
	}, nil
}

// fillUniform turns an empty vector into n entries of 1/n.
func fillUniform(v *mat.VecDense, n int) {
	if !v.IsEmpty() || n <= 0 {
		return
	}
	v.ReuseAsVec(n)
	w := 1 / float64(n)
	for i := 0; i < n; i++ {
		v.SetVec(i, w)
	}
}

// contiguous returns the vector's elements as a dense slice.
func contiguous(v *mat.VecDense) []float64 {
	raw := v.RawVector()
	if raw.Inc == 1 {
		return raw.Data[:raw.N]
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// rowMajor returns the matrix elements as a dense row-major slice.
func rowMajor(a *mat.Dense) []float64 {
	raw := a.RawMatrix()
	if raw.Stride == raw.Cols {
		return raw.Data[:raw.Rows*raw.Cols]
	}
	out := make([]float64, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		copy(out[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return out
}

// newDense wraps data as an r×c matrix; zero-sized shapes give the empty Dense.
func newDense(r, c int, data []float64) *mat.Dense {
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(r, c, data)
}

// newVec wraps data as a vector; no data gives the empty VecDense.
func newVec(data []float64) *mat.VecDense {
	if len(data) == 0 {
		return &mat.VecDense{}
	}

	return mat.NewVecDense(len(data), data)
}
