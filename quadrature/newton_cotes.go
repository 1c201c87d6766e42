// SPDX-License-Identifier: MIT

package quadrature

import (
	"math"

	"github.com/katalvlaran/numeric/field"
)

// maxTerms bounds the term count so it fits an int64.
const maxTerms = 1 << 63

// RiemannSum returns f(low) + f(low+step) + … over ⌊(high−low)/step⌋ terms.
//
// The term count is truncated toward zero, so when step does not divide
// high−low the trailing partial interval is dropped without notice. Choose a
// step that divides the range evenly for best accuracy.
//
// A count below one (empty or reversed range) sums no terms. A count that is
// NaN or does not fit an int64, as from a zero or underflowed step, yields NaN.
func RiemannSum[T field.Float](f func(T) T, low, high, step T) T {
	q := float64((high - low) / step)
	switch {
	case math.IsNaN(q) || q >= maxTerms:
		return T(math.NaN())
	case q < 1:
		return 0
	}

	var res T
	n := int64(q)

	for i := int64(0); i < n; i++ {
		res += f(low + T(i)*step)
	}

	return res
}

// RiemannIntegral returns dx · RiemannSum over the integral's bounds: the
// left-endpoint rule.
func RiemannIntegral[T field.Float](integral Integral[T], dx T) T {
	return dx * RiemannSum(integral.Function, integral.Low, integral.High, dx)
}

// NewtonCotes integrates the interior [Low+dx, High−dx] with RiemannIntegral
// and adds the half-weighted end terms dx/2·(f(Low)+f(High)): a composite
// trapezoid variant.
//
// The interior sum inherits RiemannSum's truncation, so the last interior
// node before High−dx is not sampled; the bias shrinks linearly with dx.
func NewtonCotes[T field.Float](integral Integral[T], dx T) T {
	interior := Integral[T]{
		Low:      integral.Low + dx,
		High:     integral.High - dx,
		Function: integral.Function,
	}

	return RiemannIntegral(interior, dx) +
		dx*0.5*(integral.Function(integral.Low)+integral.Function(integral.High))
}
