// SPDX-License-Identifier: MIT

// Package numeric is a small numerical-analysis toolkit: derivatives,
// definite integrals, roots and propagation of measurement uncertainty,
// generic over float32 and float64.
//
// 🚀 What is inside?
//
//	A pure-computation library plus one command-line front end:
//		• Fields: the ScalarField contract f: ℝᴺ → ℝ with arity checks
//		• Differentiation: central differences, partials, gradients
//		• Quadrature: Riemann sums, Newton–Cotes, Simpson, Gauss–Legendre
//		• Roots: bisection on a bracket, Newton–Raphson from a guess
//		• Uncertainty: measurements, first-order propagation, weighted
//		  means, Student's t test
//
// Around the kernels live the input layers:
//
//	dataset/     : whitespace-separated sample files (plain, gzip, zstd)
//	expr/        : JavaScript expressions compiled into scalar fields
//	plan/        : YAML/TOML measurement plans evaluated end to end
//	cmd/numerik/ : the numerik CLI (integrate, diff, root, measure, ttest, propagate)
//
// Quick example:
//
//	g := field.Func2[float64](func(l, t float64) float64 {
//	    return 4 * math.Pi * math.Pi * l / (t * t)
//	})
//	q, err := uncertainty.CombineQuantities[float64](g,
//	    uncertainty.Quantity[float64]{Value: 1.0, VarianceSq: 1e-6},
//	    uncertainty.Quantity[float64]{Value: 2.0, VarianceSq: 1e-4})
//
// Kernels never log and never read configuration; the CLI owns both.
//
//	go install github.com/katalvlaran/numeric/cmd/numerik@latest
package numeric
