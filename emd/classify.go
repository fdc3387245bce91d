// SPDX-License-Identifier: MIT

package emd

import "github.com/katalvlaran/ot/flow"

// Classify maps a solver status to the pipeline outcome:
//
//	StatusOptimal        -> nil
//	StatusInfeasible     -> ErrInfeasible
//	StatusUnbounded      -> ErrUnbounded
//	StatusMaxIterReached -> ErrMaxIterationsReached
//
// Any other value means the solver broke its contract; Classify panics with
// a *ContractViolation instead of coercing it into one of the errors above.
func Classify(status flow.Status) error {
	switch status {
	case flow.StatusOptimal:
		return nil
	case flow.StatusInfeasible:
		return ErrInfeasible
	case flow.StatusUnbounded:
		return ErrUnbounded
	case flow.StatusMaxIterReached:
		return ErrMaxIterationsReached
	default:
		panic(&ContractViolation{Status: status})
	}
}
