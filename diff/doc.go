// SPDX-License-Identifier: MIT

// Package diff estimates first derivatives with the symmetric central
// difference
//
//	f'(x) ≈ (f(x+ε) − f(x−ε)) / 2ε
//
// where ε = √(machine epsilon of T). The step is fixed per precision, not
// adaptive: it balances truncation error (∝ε²) against cancellation error
// (∝1/ε) for the central formula.
//
// ⚙️ Usage:
//
//	d := diff.Derivative(math.Sin, 0.0) // ≈ 1
//
//	f := field.Func2[float64](func(x, y float64) float64 { return x*x*y })
//	dx, err := diff.PartialDerivative[float64](f, 0, 3, 2) // ≈ 12
//	g, err := diff.Gradient[float64](f, 3, 2)              // ≈ [12 9]
//
// Every function here is pure: the field is evaluated twice per partial
// derivative on a private copy of the arguments and nothing is cached.
package diff
