// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numeric/quadrature"
)

var sine = quadrature.Integral[float64]{Low: 0, High: math.Pi, Function: math.Sin}

func BenchmarkGaussLegendre(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = quadrature.GaussLegendre(sine)
	}
}

func BenchmarkGaussLegendreN_32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := quadrature.GaussLegendreN(sine, 32); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpson_1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = quadrature.Simpson(sine, 1000)
	}
}

func BenchmarkNewtonCotes_1e3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = quadrature.NewtonCotes(sine, 1e-3)
	}
}
