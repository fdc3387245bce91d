// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"math"
)

// ErrInvalidSupply is returned when a node supply is NaN or ±Inf.
var ErrInvalidSupply = errors.New("flow: supply must be finite")

// Network is a directed network with node supplies and uncapacitated arcs.
// Positive supply marks a source of flow, negative supply a sink. Run finds a
// minimum-cost flow that satisfies every supply exactly.
//
// Nodes are dense integer indices [0, nodes). Arcs are numbered in insertion
// order; Flow(arc) reports results under the same numbering.
//
// A Network is not safe for concurrent mutation; Run does not modify the
// definition, so the same Network can be solved repeatedly.
type Network struct {
	nodes  int
	source []int     // tail of each arc
	target []int     // head of each arc
	cost   []float64 // unit cost of each arc
	supply []float64 // per node

	// results of the last Run
	flow       []float64
	potential  []float64
	totalCost  float64
	iterations int
}

// NewNetwork returns an empty network over nodes vertices.
// A negative count is treated as zero.
func NewNetwork(nodes int) *Network {
	if nodes < 0 {
		nodes = 0
	}

	return &Network{
		nodes:  nodes,
		supply: make([]float64, nodes),
	}
}

// Nodes returns the number of nodes.
func (nw *Network) Nodes() int { return nw.nodes }

// Arcs returns the number of arcs added so far.
func (nw *Network) Arcs() int { return len(nw.source) }

// reserveArcs grows the arc storage to hold k more arcs without reallocation.
func (nw *Network) reserveArcs(k int) {
	if k <= 0 {
		return
	}
	grow := func(s []int) []int {
		out := make([]int, len(s), len(s)+k)
		copy(out, s)
		return out
	}
	nw.source = grow(nw.source)
	nw.target = grow(nw.target)
	c := make([]float64, len(nw.cost), len(nw.cost)+k)
	copy(c, nw.cost)
	nw.cost = c
}

// AddArc adds an uncapacitated arc u→v with the given unit cost and returns
// its index.
//
// Errors:
//   - ErrNodeOutOfRange if u or v is not a node of the network.
//   - ArcError if cost is NaN or ±Inf.
func (nw *Network) AddArc(u, v int, cost float64) (int, error) {
	if u < 0 || u >= nw.nodes || v < 0 || v >= nw.nodes {
		return -1, ErrNodeOutOfRange
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return -1, ArcError{From: u, To: v, Cost: cost}
	}
	nw.source = append(nw.source, u)
	nw.target = append(nw.target, v)
	nw.cost = append(nw.cost, cost)

	return len(nw.source) - 1, nil
}

// SetSupply sets the supply of node u (negative for demand).
func (nw *Network) SetSupply(u int, s float64) error {
	if u < 0 || u >= nw.nodes {
		return ErrNodeOutOfRange
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return ErrInvalidSupply
	}
	nw.supply[u] = s

	return nil
}

// Flow returns the flow on arc after the last Run (0 for unknown arcs).
func (nw *Network) Flow(arc int) float64 {
	if arc < 0 || arc >= len(nw.flow) {
		return 0
	}

	return nw.flow[arc]
}

// Potential returns the dual potential π of node u after the last Run.
// For every arc u→v of an optimal solution, cost + π(u) − π(v) ≥ 0, with
// equality on arcs that carry flow.
func (nw *Network) Potential(u int) float64 {
	if u < 0 || u >= len(nw.potential) {
		return 0
	}

	return nw.potential[u]
}

// TotalCost returns Σ flow·cost over all arcs after the last Run.
func (nw *Network) TotalCost() float64 { return nw.totalCost }

// Iterations returns the number of pivots performed by the last Run.
func (nw *Network) Iterations() int { return nw.iterations }

// Run solves the minimum-cost flow problem with the primal network simplex
// method and returns its terminal status.
//
// Steps:
//  1. Validate options.
//  2. Reject supplies that do not balance within opts.FeasibilityTol
//     (StatusInfeasible).
//  3. Build the initial strongly feasible tree: every node hangs off an
//     artificial root by an artificial arc carrying its supply.
//  4. Pivot until no arc has a negative reduced cost (StatusOptimal), the
//     budget is spent (StatusMaxIterReached) or a cycle has no blocking arc
//     (StatusUnbounded).
//  5. Report StatusInfeasible if artificial arcs still carry flow.
//
// Flows and potentials are published for StatusOptimal and
// StatusMaxIterReached (the latter being the last feasible tree reached);
// otherwise they are zero.
//
// Complexity: each pivot costs O(A/B + N) with block size B, A arcs and N
// nodes; the number of pivots is problem dependent and bounded by
// opts.MaxIterations.
func (nw *Network) Run(opts Options) (Status, error) {
	// 1) Options
	if err := opts.validate(); err != nil {
		return StatusInfeasible, err
	}

	nw.flow = make([]float64, len(nw.source))
	nw.potential = make([]float64, nw.nodes)
	nw.totalCost = 0
	nw.iterations = 0

	// 2) Supply balance
	var sum, positive float64
	for _, s := range nw.supply {
		sum += s
		if s > 0 {
			positive += s
		}
	}
	if math.Abs(sum) > opts.FeasibilityTol*positive {
		return StatusInfeasible, nil
	}

	// 3) + 4) + 5)
	sx := newSimplex(nw, opts)
	status := sx.run(opts.MaxIterations)
	nw.iterations = sx.iterations

	if status == StatusOptimal || status == StatusMaxIterReached {
		for slot := 0; slot < sx.arcNum; slot++ {
			nw.flow[sx.arcID[slot]] = sx.flow[slot]
		}
		copy(nw.potential, sx.pi[:nw.nodes])
		for e, f := range nw.flow {
			nw.totalCost += f * nw.cost[e]
		}
	}

	return status, nil
}
