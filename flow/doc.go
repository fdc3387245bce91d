// SPDX-License-Identifier: MIT

// Package flow implements minimum-cost flow on uncapacitated networks with the
// primal network simplex method, and a transportation-problem entry point
// built on top of it.
//
// # Model
//
// A Network has N nodes with real supplies (positive: source, negative: sink)
// and A directed arcs with finite unit costs and no upper capacity. Run finds
// flows x ≥ 0 that satisfy every supply exactly while minimising Σ cost·x,
// together with node potentials π proving optimality:
//
//	reduced(u→v) = cost(u→v) + π(u) − π(v) ≥ 0   for every arc
//	reduced(u→v) = 0                             on every arc with flow
//
// # Algorithm
//
//   - Initial basis: an artificial root joined to every node by one
//     artificial arc (strongly feasible start).
//   - Pricing: one of three pivot rules picks an arc whose reduced cost is
//     negative beyond a relative tolerance.
//     BlockSearch (default) scans ~√A arcs per block, FirstEligible takes the
//     next violating arc, BestEligible the most violating one.
//   - Ratio test: the blocking arc of the cycle closed by the entering arc
//     leaves; ties are broken to keep the tree strongly feasible, which rules
//     out cycling.
//   - Termination: StatusOptimal, StatusUnbounded (negative cycle with no
//     blocking arc), StatusInfeasible (supplies unbalanced or artificial flow
//     left over) or StatusMaxIterReached.
//
// Complexity: O(A/B + N) per pivot for block size B. The pivot count is
// problem dependent; Options.MaxIterations bounds it.
//
// # Transportation
//
// Transport solves the m×n transportation problem into caller-provided
// buffers (TransportPlan). Rows and columns with zero mass are left out of
// the network; their flows and duals are reported as zero. Buffer length
// mismatches are reported as ErrBufferSize instead of panicking.
//
// # Errors
//
//	ErrNodeOutOfRange - node index outside [0, N).
//	ErrInvalidSupply  - NaN or infinite supply.
//	ErrBufferSize     - Transport buffers disagree with m, n.
//	ErrBadOptions     - negative tolerances or an unknown pivot rule.
//	ArcError          - NaN or infinite arc cost.
package flow
