// SPDX-License-Identifier: MIT

package emd_test

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ot/emd"
)

// BenchmarkEMD measures the full pipeline. The target is copied each round
// because Solve rescales it in place.
func BenchmarkEMD(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		src, dst, costs := randomInstance(size, size, int64(size))
		b.Run(fmt.Sprintf("N=%d", size), func(b *testing.B) {
			target := mat.NewVecDense(size, nil)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				target.CopyVec(dst)
				if _, err := emd.EMD(src, target, costs, emd.DefaultIterations); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
