// SPDX-License-Identifier: MIT

// Package expr turns a JavaScript expression into a scalar field.
//
// The expression body is evaluated with the members of Math in scope, so
// sin(x), sqrt(x), pow(x, 3) and PI work unqualified:
//
//	e, err := expr.Compile("4 * PI * PI * l / (T * T)", "l", "T")
//	g := e.Eval([]float64{1, 2}) // π²
//
// *Expr implements field.ScalarField[float64] and can be handed straight to
// diff.Gradient or uncertainty.CombineQuantities.
//
// ⚠️ Evaluation never returns an error: a thrown exception or a result that
// is not a number yields NaN and is recorded for Err. This matches how the
// numeric kernels treat degenerate input. Err keeps the first failure until
// Reset, so one check after a kernel returns covers every evaluation it made.
//
// Interrupt stops a running evaluation and fails all later ones; wire it to
// a context with context.AfterFunc(ctx, e.Interrupt).
//
// Calls on one *Expr are serialised; the underlying goja runtime is not
// shared between expressions.
package expr
