// SPDX-License-Identifier: MIT

package quadrature

import "github.com/katalvlaran/numeric/field"

// Simpson applies the composite Simpson 1/3 rule with n equal sub-intervals:
//
//	dx/3 · [f(a) + f(b) + 4·Σ f(a+(2i+1)dx) + 2·Σ f(a+(2i+2)dx)]
//
// with i < n/2 for the odd nodes and i < n/2−1 for the interior even nodes.
//
// n must be even. Odd n is not rejected: n/2 truncates, the last sub-interval
// gets no odd node and the result is skewed. Simpson's rule is exact for
// cubics for any even n.
func Simpson[T field.Float](integral Integral[T], n int) T {
	dx := (integral.High - integral.Low) / T(n)

	f := integral.Function
	low := integral.Low
	high := integral.High

	res := f(low) + f(high)

	var i int
	for i = 0; i < n/2; i++ {
		res += 4 * f(low+dx*T(i*2+1))
	}
	for i = 0; i < n/2-1; i++ {
		res += 2 * f(low+dx*T(i*2+2))
	}

	return res * dx / 3
}
