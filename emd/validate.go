// SPDX-License-Identifier: MIT

package emd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ValidateShapes checks that costs is |source| × |target|.
//
// It is purely structural: no weight or cost is read.
//
// Errors:
//   - ErrNilInput if any argument is nil.
//   - *DimensionError (errors.Is ErrDimensionMismatch) carrying the four
//     observed sizes otherwise.
func ValidateShapes(source, target *mat.VecDense, costs *mat.Dense) error {
	if source == nil || target == nil || costs == nil {
		return ErrNilInput
	}
	m, n := source.Len(), target.Len()
	r, c := costs.Dims()
	if r != m || c != n {
		return &DimensionError{Source: m, Target: n, Rows: r, Cols: c}
	}

	return nil
}

// validateWeights rejects negative and non-finite entries.
func validateWeights(name string, v *mat.VecDense) error {
	for i := 0; i < v.Len(); i++ {
		x := v.AtVec(i)
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s[%d] = %g: %w", name, i, x, ErrInvalidWeight)
		}
	}

	return nil
}

// validateCosts rejects NaN and ±Inf entries.
func validateCosts(costs *mat.Dense) error {
	r, c := costs.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x := costs.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("costs[%d][%d] = %g: %w", i, j, x, ErrNonFiniteCost)
			}
		}
	}

	return nil
}
