// SPDX-License-Identifier: MIT

// Package roots locates a zero of a single-variable real function.
//
// 🚀 Methods:
//
//	Bisection      bracket-halving, derivative-free, needs f(low)·f(high) < 0
//	NewtonRaphson  tangent iteration from x₀, derivative from diff.Derivative
//
// Both run a caller-chosen number of iterations; there is no tolerance
// stop. Bisection halves its bracket once per iteration, so after n
// refinements the returned midpoint is within (high−low)/2ⁿ⁺¹ of a root.
//
// ⚠️ NewtonRaphson is unguarded: a vanishing derivative yields ±Inf or NaN,
// which then propagates through the remaining iterations.
//
// ⚙️ Usage:
//
//	r, err := roots.Bisection(math.Sin, 2.0, 4.0, 100) // ≈ π
//	x := roots.NewtonRaphson(func(x float64) float64 { return x*x - 2 }, 1.0, 20)
//
// Progress can be observed with WithOnStep, which receives the iteration
// index and the current estimate.
package roots
