// SPDX-License-Identifier: MIT

// Package field defines the scalar-field contract shared by every numeric
// kernel in this module: a callable that takes exactly N floating-point
// values of one precision and returns one value of the same precision.
//
// 🚀 What is a scalar field?
//
//	f: ℝᴺ → ℝ. The differentiation engine perturbs one of its N arguments,
//	the uncertainty propagator evaluates it at the central values of N
//	measured quantities, and the 1-D kernels (quadrature, root finding)
//	consume the N=1 case as a plain func(T) T.
//
// ✨ Key features:
//   - Func1, Func2, Func3: arity fixed by the Go type itself
//   - FuncN             : arity declared once and validated at construction
//   - Apply             : arity-checked evaluation (ErrArityMismatch)
//   - MachineEpsilon    : unit roundoff per precision (float32 / float64)
//
// ⚙️ Usage:
//
//	area := field.Func2[float64](func(w, h float64) float64 { return w * h })
//	v, err := field.Apply[float64](area, []float64{2, 3}) // 6, nil
//
//	sum, err := field.NewFuncN(4, func(xs []float64) float64 {
//	    return xs[0] + xs[1] + xs[2] + xs[3]
//	})
//
// Implementations of ScalarField must treat the args slice as read-only and
// must not retain it: callers reuse the backing array between evaluations.
package field
