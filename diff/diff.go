// SPDX-License-Identifier: MIT

package diff

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/numeric/field"
)

// ErrIndexOutOfRange indicates that the differentiation index is outside
// [0, Arity()).
var ErrIndexOutOfRange = errors.New("diff: argument index out of range")

var (
	step32 = float32(math.Sqrt(float64(field.MachineEpsilon[float32]())))
	step64 = math.Sqrt(field.MachineEpsilon[float64]())
)

// Step returns the central-difference step ε = √eps(T) used by every
// function in this package.
func Step[T field.Float]() T {
	var probe T
	if unsafe.Sizeof(probe) == 4 {
		return T(step32)
	}

	return T(step64)
}

// Derivative returns the central-difference estimate of f'(x).
//
// The upper abscissa is reached as (x−ε)+2ε, the same sequence of roundings
// PartialDerivative performs on its perturbed argument.
func Derivative[T field.Float](f func(T) T, x T) T {
	eps := Step[T]()

	x -= eps
	lo := f(x)
	x += 2 * eps
	hi := f(x)

	return (hi - lo) / (2 * eps)
}

// PartialDerivative returns ∂f/∂xₙ evaluated at args.
//
// Only argument n is perturbed; the others are held at their given values.
// The caller's slice is never modified.
//
// Errors:
//   - field.ErrArityMismatch if len(args) != f.Arity().
//   - ErrIndexOutOfRange     if n < 0 or n >= f.Arity().
func PartialDerivative[T field.Float](f field.ScalarField[T], n int, args ...T) (T, error) {
	if err := field.CheckArity(f, len(args)); err != nil {
		return 0, err
	}
	if n < 0 || n >= len(args) {
		return 0, fmt.Errorf("%w: index %d, arity %d", ErrIndexOutOfRange, n, len(args))
	}

	buf := make([]T, len(args))
	copy(buf, args)

	return partial(f, n, buf), nil
}

// Gradient returns every partial derivative of f at args, in argument order.
//
// Errors:
//   - field.ErrArityMismatch if len(args) != f.Arity().
func Gradient[T field.Float](f field.ScalarField[T], args ...T) ([]T, error) {
	if err := field.CheckArity(f, len(args)); err != nil {
		return nil, err
	}

	buf := make([]T, len(args))
	copy(buf, args)

	grad := make([]T, len(args))
	for i := range grad {
		grad[i] = partial(f, i, buf)
	}

	return grad, nil
}

// partial perturbs buf[n], evaluates f twice and restores buf[n].
func partial[T field.Float](f field.ScalarField[T], n int, buf []T) T {
	eps := Step[T]()
	orig := buf[n]

	buf[n] -= eps
	lo := f.Eval(buf)
	buf[n] += 2 * eps
	hi := f.Eval(buf)

	buf[n] = orig

	return (hi - lo) / (2 * eps)
}
