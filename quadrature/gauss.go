// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/numeric/field"
)

// node is one abscissa/weight pair of a rule on [-1, 1].
type node struct {
	x float64
	w float64
}

// legendre10 is the 10-point Gauss–Legendre rule on [-1, 1].
var legendre10 = [10]node{
	{-0.973906528517171720078, 0.0666713443086881375936},
	{-0.8650633666889845107321, 0.149451349150580593146},
	{-0.6794095682990244062343, 0.219086362515982043996},
	{-0.4333953941292471907993, 0.2692667193099963550912},
	{-0.1488743389816312108848, 0.2955242247147528701739},
	{0.1488743389816312108848, 0.295524224714752870174},
	{0.4333953941292471907993, 0.269266719309996355091},
	{0.6794095682990244062343, 0.2190863625159820439955},
	{0.8650633666889845107321, 0.1494513491505805931458},
	{0.973906528517171720078, 0.0666713443086881375936},
}

// GaussLegendre integrates with the fixed 10-point Gauss–Legendre rule.
//
// [Low, High] is mapped onto [-1, 1] by g(x) = c0·x + c1 with
// c0 = (High−Low)/2 and c1 = Low + c0, so the sum is Σ wᵢ·f(g(xᵢ))·c0.
// Exact for polynomials up to degree 19; no adaptivity.
func GaussLegendre[T field.Float](integral Integral[T]) T {
	return gaussSum(integral, legendre10[:])
}

// GaussLegendreN integrates with an order-point Gauss–Legendre rule whose
// nodes are generated by gonum's quad.Legendre. Exact for polynomials up to
// degree 2·order−1.
//
// Errors:
//   - ErrBadOrder if order < 1.
func GaussLegendreN[T field.Float](integral Integral[T], order int) (T, error) {
	if order < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadOrder, order)
	}

	return gaussSum(integral, legendreNodes(order)), nil
}

// legendreNodes returns the order-point rule on [-1, 1].
func legendreNodes(order int) []node {
	xs := make([]float64, order)
	ws := make([]float64, order)
	quad.Legendre{}.FixedLocations(xs, ws, -1, 1)

	nodes := make([]node, order)
	for i := range nodes {
		nodes[i] = node{x: xs[i], w: ws[i]}
	}

	return nodes
}

// gaussSum evaluates Σ wᵢ·f(c0·xᵢ + c1)·c0 over nodes.
func gaussSum[T field.Float](integral Integral[T], nodes []node) T {
	c0 := (integral.High - integral.Low) / 2
	c1 := integral.Low + c0

	var res T
	for _, nd := range nodes {
		res += T(nd.w) * integral.Function(c0*T(nd.x)+c1) * c0
	}

	return res
}
