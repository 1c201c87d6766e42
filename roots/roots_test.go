// SPDX-License-Identifier: MIT

package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numeric/roots"
)

func sqrt2Poly(x float64) float64 { return x*x - 2 }

func TestBisection_SineNearPi(t *testing.T) {
	r, err := roots.Bisection(math.Sin, 2.0, 4.0, 100)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, r, 1e-10)
}

func TestBisection_ShrinksGeometrically(t *testing.T) {
	for _, n := range []int{0, 1, 5, 10, 20} {
		r, err := roots.Bisection(sqrt2Poly, 0.0, 2.0, n)
		require.NoError(t, err)
		bound := 2.0 / math.Pow(2, float64(n+1))
		assert.LessOrEqual(t, math.Abs(r-math.Sqrt2), bound, "n=%d", n)
	}
}

func TestBisection_ZeroCountReturnsFirstMidpoint(t *testing.T) {
	r, err := roots.Bisection(sqrt2Poly, 0.0, 4.0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r)
}

func TestBisection_RootAtMidpoint(t *testing.T) {
	// f(mid) == 0 moves high down; the bracket keeps closing on 0.
	r, err := roots.Bisection(func(x float64) float64 { return x }, -1.0, 1.0, 60)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r, 1e-15)
}

func TestBisection_DecreasingFunction(t *testing.T) {
	r, err := roots.Bisection(func(x float64) float64 { return 3 - x }, 0.0, 10.0, 60)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r, 1e-12)
}

func TestBisection_Float32(t *testing.T) {
	r, err := roots.Bisection(func(x float32) float32 { return x*x - 2 }, 0, 2, 40)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, float64(r), 1e-6)
}

func TestBisection_Errors(t *testing.T) {
	_, err := roots.Bisection(math.Sin, 4.0, 2.0, 10)
	assert.ErrorIs(t, err, roots.ErrBadInterval)

	_, err = roots.Bisection(math.Sin, 3.0, 3.0, 10)
	assert.ErrorIs(t, err, roots.ErrBadInterval)

	_, err = roots.Bisection(math.Sin, math.NaN(), 3.0, 10)
	assert.ErrorIs(t, err, roots.ErrBadInterval)

	_, err = roots.Bisection(func(x float64) float64 { return x*x + 1 }, -1.0, 1.0, 10)
	assert.ErrorIs(t, err, roots.ErrNotBracketed)

	// A root exactly at an endpoint is not a strict sign change.
	_, err = roots.Bisection(sqrt2Poly, 0.0, 2.0, 10)
	require.NoError(t, err)
	_, err = roots.Bisection(func(x float64) float64 { return x - 1 }, 0.0, 1.0, 10)
	assert.ErrorIs(t, err, roots.ErrNotBracketed)

	_, err = roots.Bisection(math.Sin, 2.0, 4.0, -1)
	assert.ErrorIs(t, err, roots.ErrBadIterations)
}

func TestBisection_OnStep(t *testing.T) {
	var seen []float64
	_, err := roots.Bisection(sqrt2Poly, 0.0, 2.0, 5, roots.WithOnStep(func(i int, x float64) {
		assert.Equal(t, len(seen), i)
		seen = append(seen, x)
	}))
	require.NoError(t, err)
	require.Len(t, seen, 6, "n refinements plus the initial midpoint")
	assert.Equal(t, 1.0, seen[0])
	assert.Equal(t, 1.5, seen[1])
	assert.Equal(t, 1.25, seen[2])
}

func TestNewtonRaphson_Sqrt2(t *testing.T) {
	assert.InDelta(t, math.Sqrt2, roots.NewtonRaphson(sqrt2Poly, 1.0, 20), 1e-12)
}

func TestNewtonRaphson_ZeroIterations(t *testing.T) {
	assert.Equal(t, 1.5, roots.NewtonRaphson(sqrt2Poly, 1.5, 0))
	assert.Equal(t, 1.5, roots.NewtonRaphson(sqrt2Poly, 1.5, -3))
}

func TestNewtonRaphson_RefinesBisection(t *testing.T) {
	f := func(x float64) float64 { return (x*x*x - 9) / (math.Log(x) - 1) }
	coarse, err := roots.Bisection(f, 1.8, 2.1, 10)
	require.NoError(t, err)

	want := math.Cbrt(9)
	assert.InDelta(t, want, coarse, 2e-4)

	fine := roots.NewtonRaphson(f, coarse, 10)
	assert.InDelta(t, want, fine, 1e-9)
	assert.Less(t, math.Abs(fine-want), math.Abs(coarse-want))
}

func TestNewtonRaphson_ZeroDerivativeIsNotGuarded(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	assert.True(t, math.IsInf(roots.NewtonRaphson(f, 0.0, 1), -1))
	assert.True(t, math.IsNaN(roots.NewtonRaphson(f, 0.0, 3)))
}

func TestNewtonRaphson_Float32(t *testing.T) {
	x := roots.NewtonRaphson(func(x float32) float32 { return x*x - 2 }, 1, 10)
	assert.InDelta(t, math.Sqrt2, float64(x), 1e-3)
}

func TestNewtonRaphson_OnStep(t *testing.T) {
	calls := 0
	roots.NewtonRaphson(sqrt2Poly, 1.0, 4, roots.WithOnStep(func(i int, x float64) {
		assert.Equal(t, calls, i)
		calls++
	}))
	assert.Equal(t, 4, calls)
}
