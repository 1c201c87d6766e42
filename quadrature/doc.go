// SPDX-License-Identifier: MIT

// Package quadrature approximates definite integrals ∫ₐᵇ f(x) dx.
//
// 🚀 Estimators:
//
//	RiemannSum / RiemannIntegral  left-endpoint rule, step dx
//	NewtonCotes                   composite trapezoid over [a+dx, b−dx] plus end terms
//	Simpson                       composite Simpson 1/3 rule, n sub-intervals
//	GaussLegendre                 fixed 10-point Gauss–Legendre rule
//	GaussLegendreN                Gauss–Legendre rule of any order (nodes from gonum)
//
// All estimators share the Integral value type and are pure functions of
// their inputs. None of them is adaptive: the caller picks the resolution
// (dx, n or order) and checks convergence by refining it.
//
// ⚠️ Silent degeneracies (kept on purpose, documented per function):
//   - RiemannSum drops the trailing partial interval when dx does not divide b−a.
//   - Simpson with odd n skews its even-index sum; n must be even.
//   - Integral.Low > Integral.High is not rejected.
//
// ⚙️ Usage:
//
//	in := quadrature.Integral[float64]{Low: 0, High: math.Pi / 2, Function: math.Cos}
//	s := quadrature.Simpson(in, 1000)  // ≈ 1
//	g := quadrature.GaussLegendre(in)  // ≈ 1
//
// Complexity:
//
//	Riemann/NewtonCotes: O((b−a)/dx) evaluations; Simpson: n+1;
//	GaussLegendre: 10; GaussLegendreN: order (+ O(order²) node generation).
package quadrature
