// Package ot computes optimal-transport distances between discrete
// distributions.
//
// 🚀 What is in ot?
//
//	• emd/  — Earth Mover's Distance: validation, mass balancing, a single
//	          solver seam and a typed error taxonomy, over gonum vectors and
//	          matrices
//	• flow/ — minimum-cost flow by the primal network simplex method, plus a
//	          buffer-based transportation entry point used by emd
//	• cmd/emd — command-line front end: YAML/JSON problems in, tables or
//	          JSON out
//
// ✨ Why choose ot?
//
//   - Exact – network simplex, not an entropic approximation
//   - Deterministic – fixed arc order and tie-breaking, bit-identical reruns
//   - Explicit – every failure is a sentinel or typed error; only a broken
//     solver contract panics
//
// Quick example:
//
//	src := mat.NewVecDense(2, []float64{0.5, 0.5})
//	dst := mat.NewVecDense(2, []float64{0.5, 0.5})
//	costs := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
//	res, err := emd.EMD(src, dst, costs, emd.DefaultIterations)
//
//	go get github.com/katalvlaran/ot
package ot
