// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the field package.
var (
	// ErrArityMismatch indicates that the number of supplied arguments differs
	// from the arity declared by the field.
	ErrArityMismatch = errors.New("field: argument count does not match field arity")

	// ErrBadArity indicates that a FuncN was declared with arity < 1.
	ErrBadArity = errors.New("field: arity must be at least 1")

	// ErrNilFunction indicates that a nil function was wrapped.
	ErrNilFunction = errors.New("field: function is nil")
)

// Float is the precision constraint used by every kernel: float32, float64
// and named types derived from them.
type Float interface {
	constraints.Float
}

// ScalarField is a callable ℝᴺ → ℝ with a fixed arity N.
//
// Eval is called with len(args) == Arity(). It must not mutate or retain args.
type ScalarField[T Float] interface {
	Arity() int
	Eval(args []T) T
}

// Func1 adapts a unary function to ScalarField.
type Func1[T Float] func(x T) T

// Arity always returns 1.
func (f Func1[T]) Arity() int { return 1 }

// Eval calls f(args[0]).
func (f Func1[T]) Eval(args []T) T { return f(args[0]) }

// Func2 adapts a binary function to ScalarField.
type Func2[T Float] func(x, y T) T

// Arity always returns 2.
func (f Func2[T]) Arity() int { return 2 }

// Eval calls f(args[0], args[1]).
func (f Func2[T]) Eval(args []T) T { return f(args[0], args[1]) }

// Func3 adapts a ternary function to ScalarField.
type Func3[T Float] func(x, y, z T) T

// Arity always returns 3.
func (f Func3[T]) Arity() int { return 3 }

// Eval calls f(args[0], args[1], args[2]).
func (f Func3[T]) Eval(args []T) T { return f(args[0], args[1], args[2]) }

// FuncN is a slice-based field whose arity is declared at construction.
// The zero value is not usable; build it with NewFuncN.
type FuncN[T Float] struct {
	arity int
	fn    func(args []T) T
}

// NewFuncN wraps fn as a field of the given arity.
//
// Errors:
//   - ErrBadArity    if arity < 1.
//   - ErrNilFunction if fn == nil.
func NewFuncN[T Float](arity int, fn func(args []T) T) (FuncN[T], error) {
	if arity < 1 {
		return FuncN[T]{}, fmt.Errorf("%w: got %d", ErrBadArity, arity)
	}
	if fn == nil {
		return FuncN[T]{}, ErrNilFunction
	}

	return FuncN[T]{arity: arity, fn: fn}, nil
}

// Arity returns the declared number of arguments.
func (f FuncN[T]) Arity() int { return f.arity }

// Eval calls the wrapped function.
func (f FuncN[T]) Eval(args []T) T { return f.fn(args) }

// Apply evaluates f at args after checking that len(args) matches f.Arity().
func Apply[T Float](f ScalarField[T], args []T) (T, error) {
	if err := CheckArity(f, len(args)); err != nil {
		return 0, err
	}

	return f.Eval(args), nil
}

// CheckArity returns ErrArityMismatch (wrapped with both counts) when f does
// not take exactly n arguments.
func CheckArity[T Float](f ScalarField[T], n int) error {
	if f.Arity() != n {
		return fmt.Errorf("%w: field takes %d, got %d", ErrArityMismatch, f.Arity(), n)
	}

	return nil
}

// Unary turns a field of arity 1 into a plain func(T) T, the form consumed by
// the quadrature and root-finding kernels.
func Unary[T Float](f ScalarField[T]) (func(T) T, error) {
	if err := CheckArity(f, 1); err != nil {
		return nil, err
	}
	if fn, ok := f.(Func1[T]); ok {
		return fn, nil
	}

	return func(x T) T { return f.Eval([]T{x}) }, nil
}

// MachineEpsilon returns the distance from 1 to the next representable value
// of T: 2⁻²³ for 32-bit floats and 2⁻⁵² for 64-bit floats.
func MachineEpsilon[T Float]() T {
	var probe T
	if unsafe.Sizeof(probe) == 4 {
		return T(0x1p-23)
	}

	return T(0x1p-52)
}
