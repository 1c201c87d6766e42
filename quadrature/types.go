// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numeric/field"
)

// Sentinel errors returned by the quadrature package.
var (
	// ErrBadOrder indicates a Gauss–Legendre order < 1.
	ErrBadOrder = errors.New("quadrature: order must be at least 1")

	// ErrBadStep indicates a non-positive or non-finite Riemann/Newton–Cotes step.
	ErrBadStep = errors.New("quadrature: step must be positive and finite")

	// ErrBadIntervals indicates a non-positive Simpson interval count.
	ErrBadIntervals = errors.New("quadrature: interval count must be positive")

	// ErrUnknownMethod indicates an unrecognized Method value or name.
	ErrUnknownMethod = errors.New("quadrature: unknown method")
)

// Integral is an interval [Low, High] together with its integrand.
//
// Low <= High is assumed by every estimator but not enforced.
type Integral[T field.Float] struct {
	Low      T
	High     T
	Function func(T) T
}

// Method selects an estimator for Integrate.
type Method int

const (
	// MethodGaussLegendre is the fixed 10-point rule (default).
	MethodGaussLegendre Method = iota

	// MethodGaussLegendreN is the Gauss–Legendre rule of Options.Order points.
	MethodGaussLegendreN

	// MethodSimpson is the composite Simpson rule with Options.Intervals.
	MethodSimpson

	// MethodNewtonCotes is the trapezoid variant with Options.Step.
	MethodNewtonCotes

	// MethodRiemann is the left Riemann integral with Options.Step.
	MethodRiemann
)

var methodNames = map[Method]string{
	MethodGaussLegendre:  "gauss",
	MethodGaussLegendreN: "gauss-n",
	MethodSimpson:        "simpson",
	MethodNewtonCotes:    "newton-cotes",
	MethodRiemann:        "riemann",
}

// String returns the CLI name of m.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return "unknown"
}

// ParseMethod maps a CLI name ("gauss", "gauss-n", "simpson",
// "newton-cotes", "riemann") back to a Method.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Methods lists every Method in declaration order.
func Methods() []Method {
	return []Method{MethodGaussLegendre, MethodGaussLegendreN, MethodSimpson, MethodNewtonCotes, MethodRiemann}
}

// Options carries the resolution parameter each Method needs.
//
// Step      – dx for MethodRiemann and MethodNewtonCotes (must be > 0).
// Intervals – n for MethodSimpson (must be > 0; even for exact Simpson weights).
// Order     – number of nodes for MethodGaussLegendreN (must be ≥ 1).
type Options struct {
	Step      float64
	Intervals int
	Order     int
}

// Option is a functional option for Integrate.
type Option func(*Options)

// DefaultOptions returns Step=1e-3, Intervals=1000, Order=10.
func DefaultOptions() Options {
	return Options{
		Step:      1e-3,
		Intervals: 1000,
		Order:     10,
	}
}

// WithStep sets the Riemann/Newton–Cotes step.
func WithStep(dx float64) Option {
	return func(o *Options) { o.Step = dx }
}

// WithIntervals sets the Simpson interval count.
func WithIntervals(n int) Option {
	return func(o *Options) { o.Intervals = n }
}

// WithOrder sets the Gauss–Legendre order for MethodGaussLegendreN.
func WithOrder(order int) Option {
	return func(o *Options) { o.Order = order }
}
