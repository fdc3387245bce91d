// SPDX-License-Identifier: MIT

package emd

import "gonum.org/v1/gonum/mat"

// Balance rescales target in place by Σsource / Σtarget so both
// distributions carry the same mass.
//
// If Σtarget is zero the target is left untouched and ErrZeroTargetMass is
// returned; no non-finite scale factor is ever applied.
func Balance(source, target *mat.VecDense) error {
	if source == nil || target == nil {
		return ErrNilInput
	}
	st := total(target)
	if st == 0 {
		return ErrZeroTargetMass
	}
	target.ScaleVec(total(source)/st, target)

	return nil
}

// total sums a vector; the empty vector sums to 0.
func total(v *mat.VecDense) float64 {
	if v.Len() == 0 {
		return 0
	}

	return mat.Sum(v)
}
