// SPDX-License-Identifier: MIT

package flow_test

import (
	"testing"

	"github.com/katalvlaran/ot/flow"
)

// BenchmarkTransport measures the simplex on dense random problems of
// increasing size, once per pivot rule.
func BenchmarkTransport(b *testing.B) {
	cases := []struct {
		name string
		m, n int
	}{
		{"Small", 32, 32},
		{"Medium", 128, 128},
		{"Large", 256, 256},
	}
	rules := []flow.PivotRule{flow.BlockSearch, flow.FirstEligible, flow.BestEligible}

	for _, tc := range cases {
		supply, demand, cost := randomProblem(tc.m, tc.n, 42)
		for _, rule := range rules {
			b.Run(tc.name+"/"+rule.String(), func(b *testing.B) {
				opts := flow.DefaultOptions()
				opts.Pivot = rule
				opts.MaxIterations = 0
				out := flow.NewTransportPlan(tc.m, tc.n)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := flow.Transport(tc.m, tc.n, supply, demand, cost, out, opts); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
