// SPDX-License-Identifier: MIT

package flow

// TransportPlan holds the caller-allocated output buffers of Transport.
//
//   - Flow:  m·n entries, row-major; Flow[i*n+j] is the mass moved i→j.
//   - Alpha: m source-side dual potentials.
//   - Beta:  n target-side dual potentials.
//
// Cost and Iterations are filled in by Transport.
type TransportPlan struct {
	Flow       []float64
	Alpha      []float64
	Beta       []float64
	Cost       float64
	Iterations int
}

// NewTransportPlan allocates a plan sized for an m×n problem.
func NewTransportPlan(m, n int) *TransportPlan {
	return &TransportPlan{
		Flow:  make([]float64, m*n),
		Alpha: make([]float64, m),
		Beta:  make([]float64, n),
	}
}

// Transport solves the m×n transportation problem
//
//	min Σ cost[i*n+j]·x[i*n+j]  s.t.  Σ_j x = supply[i],  Σ_i x = demand[j],  x ≥ 0
//
// by building a bipartite Network and running the network simplex.
// Supplies and demands must balance; cost is row-major.
//
// Steps:
//  1. Check every buffer length against m and n (ErrBufferSize, never panics).
//  2. Keep only sources and sinks with strictly positive mass; the others
//     get zero flow and zero potential.
//  3. Add one arc i→j per kept pair and run.
//  4. For StatusOptimal and StatusMaxIterReached publish flows, the total
//     cost and duals Alpha[i] = −π(i), Beta[j] = π(j), so that
//     Alpha[i] + Beta[j] ≤ cost[i*n+j] at optimality.
//
// The returned Status is meaningful only when err is nil.
func Transport(m, n int, supply, demand, cost []float64, out *TransportPlan, opts Options) (Status, error) {
	// 1) Buffer contract
	if m < 0 || n < 0 || out == nil ||
		len(supply) != m || len(demand) != n || len(cost) != m*n ||
		len(out.Flow) != m*n || len(out.Alpha) != m || len(out.Beta) != n {
		return StatusInfeasible, ErrBufferSize
	}
	for i := range out.Flow {
		out.Flow[i] = 0
	}
	for i := range out.Alpha {
		out.Alpha[i] = 0
	}
	for j := range out.Beta {
		out.Beta[j] = 0
	}
	out.Cost, out.Iterations = 0, 0

	// 2) Active nodes
	rows := make([]int, 0, m)
	for i, s := range supply {
		if s > 0 {
			rows = append(rows, i)
		}
	}
	cols := make([]int, 0, n)
	for j, d := range demand {
		if d > 0 {
			cols = append(cols, j)
		}
	}

	// 3) Bipartite network: sources first, then sinks
	off := len(rows)
	nw := NewNetwork(off + len(cols))
	for k, i := range rows {
		if err := nw.SetSupply(k, supply[i]); err != nil {
			return StatusInfeasible, err
		}
	}
	for l, j := range cols {
		if err := nw.SetSupply(off+l, -demand[j]); err != nil {
			return StatusInfeasible, err
		}
	}
	nw.reserveArcs(len(rows) * len(cols))
	for k, i := range rows {
		for l, j := range cols {
			if _, err := nw.AddArc(k, off+l, cost[i*n+j]); err != nil {
				return StatusInfeasible, ArcError{From: i, To: j, Cost: cost[i*n+j]}
			}
		}
	}

	status, err := nw.Run(opts)
	if err != nil {
		return status, err
	}
	out.Iterations = nw.Iterations()

	// 4) Publish
	if status != StatusOptimal && status != StatusMaxIterReached {
		return status, nil
	}
	arc := 0
	for _, i := range rows {
		for _, j := range cols {
			f := nw.Flow(arc)
			out.Flow[i*n+j] = f
			out.Cost += f * cost[i*n+j]
			arc++
		}
	}
	for k, i := range rows {
		out.Alpha[i] = -nw.Potential(k)
	}
	for l, j := range cols {
		out.Beta[j] = nw.Potential(off + l)
	}

	return status, nil
}
