// SPDX-License-Identifier: MIT

package emd

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSolveRejectsOverlap(t *testing.T) {
	s := NewSolver(
		mat.NewVecDense(1, []float64{1}),
		mat.NewVecDense(1, []float64{1}),
		mat.NewDense(1, 1, []float64{0}),
	)

	s.busy.Store(true)
	_, err := s.Solve()
	require.ErrorIs(t, err, ErrSolverBusy)

	// the iteration guard still comes first
	_, err = s.Iterations(-5).Solve()
	require.ErrorIs(t, err, ErrInvalidIterations)

	s.busy.Store(false)
	res, err := s.Iterations(10).Solve()
	require.NoError(t, err)
	require.Equal(t, 0.0, res.EMD)
	require.False(t, s.busy.Load())
}

func TestFillUniformLeavesNonEmpty(t *testing.T) {
	v := mat.NewVecDense(2, []float64{3, 4})
	fillUniform(v, 5)
	require.Equal(t, 2, v.Len())

	empty := &mat.VecDense{}
	fillUniform(empty, 0)
	require.True(t, empty.IsEmpty())
}
