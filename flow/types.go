// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
)

// ErrNodeOutOfRange is returned when a node index is outside [0, nodes).
var ErrNodeOutOfRange = errors.New("flow: node index out of range")

// ErrBufferSize is returned by Transport when a caller-provided buffer does
// not match the declared problem dimensions.
var ErrBufferSize = errors.New("flow: buffer length does not match dimensions")

// ErrBadOptions is returned when Options carry a meaningless value.
var ErrBadOptions = errors.New("flow: invalid options")

// ArcError is returned when an arc is rejected because of its cost.
type ArcError struct {
	From, To int
	Cost     float64
}

func (e ArcError) Error() string {
	return fmt.Sprintf("flow: non-finite cost on arc %d→%d: %g", e.From, e.To, e.Cost)
}

// Status is the terminal state of a network simplex run. The numeric values
// are part of the contract: 0 infeasible, 1 optimal, 2 unbounded,
// 3 iteration limit reached.
type Status int

const (
	// StatusInfeasible: no flow satisfies the supply constraints.
	StatusInfeasible Status = 0
	// StatusOptimal: an optimal flow was found.
	StatusOptimal Status = 1
	// StatusUnbounded: the objective decreases without bound along a cycle.
	StatusUnbounded Status = 2
	// StatusMaxIterReached: the pivot budget ran out before optimality was proven.
	StatusMaxIterReached Status = 3
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusInfeasible:
		return "infeasible"
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusMaxIterReached:
		return "max-iterations-reached"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// PivotRule selects how the entering arc is chosen in each iteration.
//
//   - BlockSearch: scan the arcs in blocks of ~√E and take the most
//     violating arc of the first block that has one (default).
//   - FirstEligible: take the first violating arc after the previous one.
//   - BestEligible: take the most violating arc of the whole network.
type PivotRule int

const (
	BlockSearch PivotRule = iota
	FirstEligible
	BestEligible
)

// String implements fmt.Stringer.
func (r PivotRule) String() string {
	switch r {
	case BlockSearch:
		return "block-search"
	case FirstEligible:
		return "first-eligible"
	case BestEligible:
		return "best-eligible"
	default:
		return fmt.Sprintf("PivotRule(%d)", int(r))
	}
}

// ParsePivotRule maps the String form of a rule back to its value.
func ParsePivotRule(s string) (PivotRule, error) {
	switch s {
	case "block-search", "":
		return BlockSearch, nil
	case "first-eligible":
		return FirstEligible, nil
	case "best-eligible":
		return BestEligible, nil
	default:
		return 0, fmt.Errorf("unknown pivot rule %q: %w", s, ErrBadOptions)
	}
}

// Defaults used by DefaultOptions.
const (
	DefaultMaxIterations = 100000
	DefaultEpsilon       = 2.2204460492503131e-15
	// DefaultFeasibilityTol bounds the flow left on artificial arcs, relative
	// to the total supply, for a run to be reported optimal.
	DefaultFeasibilityTol = 1e-9
	minBlockSize          = 10
)

// Options configures a network simplex run.
//   - MaxIterations: pivot budget; 0 or negative means unlimited.
//   - Pivot: entering-arc rule.
//   - Epsilon: relative tolerance on reduced costs (an arc enters only if its
//     reduced cost is below -Epsilon·max(|c|, |π_u|, |π_v|)).
//   - FeasibilityTol: relative tolerance on artificial flow and supply balance.
//   - BlockSize: BlockSearch block length; 0 picks max(√arcs, 10).
//   - ArcMixing: interleave arcs so that consecutive blocks touch different nodes.
type Options struct {
	MaxIterations  int
	Pivot          PivotRule
	Epsilon        float64
	FeasibilityTol float64
	BlockSize      int
	ArcMixing      bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:  DefaultMaxIterations,
		Pivot:          BlockSearch,
		Epsilon:        DefaultEpsilon,
		FeasibilityTol: DefaultFeasibilityTol,
		ArcMixing:      true,
	}
}

// validate rejects options that would break the optimality test.
func (o Options) validate() error {
	if o.Epsilon < 0 || o.FeasibilityTol < 0 || o.BlockSize < 0 {
		return ErrBadOptions
	}
	switch o.Pivot {
	case BlockSearch, FirstEligible, BestEligible:
		return nil
	default:
		return fmt.Errorf("pivot rule %d: %w", int(o.Pivot), ErrBadOptions)
	}
}
