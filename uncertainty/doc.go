// SPDX-License-Identifier: MIT

// Package uncertainty carries measured values together with their variance
// and propagates that variance through arbitrary combining functions.
//
// 🚀 Building blocks:
//
//	Quantity          (value, variance²) pair, the unit of propagation
//	Measurement       statistics of a raw sample set plus instrument uncertainty
//	SetupMeasurement  samples → Measurement (Bessel-corrected)
//	CombineQuantities first-order propagation Σ (∂f/∂xᵢ)²·σᵢ² through a field
//	MeanQuantity      unweighted mean of independent quantities
//	MeanWeightedQuantity inverse-variance weighted mean (internal/external variance)
//	StudentT          pooled two-sample t statistic with a two-sided p-value
//
// ✨ Uncertainty model:
//   - Type A (statistical): sample variance / n.
//   - Type B (instrument): a uniform distribution of half-width d, variance d²/3.
//   - Both are independent and add as variances.
//
// Inputs to CombineQuantities are assumed independent; covariance terms
// are not modelled. Partial derivatives come from diff.Gradient.
//
// ⚙️ Usage:
//
//	l, _ := uncertainty.SetupMeasurement(lengths, 0.001)
//	t, _ := uncertainty.SetupMeasurement(periods, 0.01)
//	g := field.Func2[float64](func(l, t float64) float64 { return 4 * math.Pi * math.Pi * l / (t * t) })
//	q, err := uncertainty.CombineQuantities[float64](g, l.Quantity(), t.Quantity())
//	fmt.Println(q) // value: …, uncertainty: …
//
// All values here are immutable; every function is pure.
package uncertainty
