// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numeric/diff"
	"github.com/katalvlaran/numeric/field"
)

var (
	// ErrBadInterval indicates that low is not strictly below high.
	ErrBadInterval = errors.New("roots: interval requires low < high")

	// ErrNotBracketed indicates that f(low) and f(high) do not differ in sign.
	ErrNotBracketed = errors.New("roots: root is not bracketed")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("roots: iteration count must be non-negative")
)

// Options configures the iteration hooks.
type Options[T field.Float] struct {
	// OnStep, if non-nil, is called after every iteration with the
	// iteration index (from 0) and the current estimate.
	OnStep func(i int, x T)
}

// Option mutates Options.
type Option[T field.Float] func(*Options[T])

// WithOnStep installs a per-iteration observer.
func WithOnStep[T field.Float](fn func(i int, x T)) Option[T] {
	return func(o *Options[T]) { o.OnStep = fn }
}

func collect[T field.Float](opts []Option[T]) Options[T] {
	var o Options[T]
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Bisection narrows [low, high] around a sign change of f.
//
// It evaluates the midpoint n+1 times: an initial split and n
// refinements. Each midpoint is compared against f(high) as sampled on
// entry: if f(mid)·f(high) < 0 the root lies above mid and low moves up,
// otherwise high moves down. The last midpoint is returned.
//
// Errors:
//   - ErrBadInterval   if !(low < high) (NaN bounds included).
//   - ErrNotBracketed  if f(low)·f(high) >= 0.
//   - ErrBadIterations if n < 0.
func Bisection[T field.Float](f func(T) T, low, high T, n int, opts ...Option[T]) (T, error) {
	if !(low < high) {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrBadInterval, low, high)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadIterations, n)
	}

	fLow, fHigh := f(low), f(high)
	if !(fLow*fHigh < 0) {
		return 0, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNotBracketed, low, fLow, high, fHigh)
	}

	o := collect(opts)

	var mid T
	for i := 0; i <= n; i++ {
		mid = (low + high) / 2
		if f(mid)*fHigh < 0 {
			low = mid
		} else {
			high = mid
		}
		if o.OnStep != nil {
			o.OnStep(i, mid)
		}
	}

	return mid, nil
}

// NewtonRaphson runs n tangent steps
//
//	x ← (f'(x)·x − f(x)) / f'(x)
//
// from x0 and returns the final iterate. A non-positive n returns x0.
func NewtonRaphson[T field.Float](f func(T) T, x0 T, n int, opts ...Option[T]) T {
	o := collect(opts)

	x := x0
	for i := 0; i < n; i++ {
		dfdx := diff.Derivative(f, x)
		x = (dfdx*x - f(x)) / dfdx
		if o.OnStep != nil {
			o.OnStep(i, x)
		}
	}

	return x
}
