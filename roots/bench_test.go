// SPDX-License-Identifier: MIT

package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numeric/roots"
)

func BenchmarkBisection_100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := roots.Bisection(math.Sin, 2.0, 4.0, 100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewtonRaphson_20(b *testing.B) {
	f := func(x float64) float64 { return x*x - 2 }
	for i := 0; i < b.N; i++ {
		_ = roots.NewtonRaphson(f, 1.0, 20)
	}
}
