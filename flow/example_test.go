// SPDX-License-Identifier: MIT

package flow_test

import (
	"fmt"

	"github.com/katalvlaran/ot/flow"
)

////////////////////////////////////////////////////////////////////////////////
// Network Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleNetwork_Run ships 3 units from node 0 to node 3 over a diamond.
// Graph:
//
//	0→1 (cost 1), 1→3 (cost 1)
//	0→2 (cost 2), 2→3 (cost 2)
//
// Both paths are uncapacitated, so everything takes the cheaper one.
func ExampleNetwork_Run() {
	nw := flow.NewNetwork(4)
	_, _ = nw.AddArc(0, 1, 1)
	_, _ = nw.AddArc(1, 3, 1)
	_, _ = nw.AddArc(0, 2, 2)
	_, _ = nw.AddArc(2, 3, 2)
	_ = nw.SetSupply(0, 3)
	_ = nw.SetSupply(3, -3)

	status, _ := nw.Run(flow.DefaultOptions())
	fmt.Println(status)
	fmt.Println(nw.Flow(0), nw.Flow(1), nw.Flow(2), nw.Flow(3))
	fmt.Println(nw.TotalCost())
	// Output:
	// optimal
	// 3 3 0 0
	// 6
}

////////////////////////////////////////////////////////////////////////////////
// Transport Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleTransport solves a 3×3 assignment problem.
func ExampleTransport() {
	cost := []float64{
		4, 1, 3,
		2, 0, 5,
		3, 2, 2,
	}
	ones := []float64{1, 1, 1}
	out := flow.NewTransportPlan(3, 3)

	status, err := flow.Transport(3, 3, ones, ones, cost, out, flow.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(status, out.Cost)
	for i := 0; i < 3; i++ {
		fmt.Println(out.Flow[i*3 : i*3+3])
	}
	// Output:
	// optimal 5
	// [0 1 0]
	// [1 0 0]
	// [0 0 1]
}
