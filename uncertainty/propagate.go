// SPDX-License-Identifier: MIT

package uncertainty

import (
	"fmt"

	"github.com/katalvlaran/numeric/diff"
	"github.com/katalvlaran/numeric/field"
)

// CombineQuantities evaluates f at the quantities' values and propagates
// their variances to first order:
//
//	σ² = Σᵢ (∂f/∂xᵢ)² · σᵢ²
//
// The partial derivatives are central differences at the values. Inputs
// are treated as independent.
//
// Errors:
//   - field.ErrArityMismatch if f.Arity() != len(qs).
func CombineQuantities[T field.Float](f field.ScalarField[T], qs ...Quantity[T]) (Quantity[T], error) {
	if err := field.CheckArity(f, len(qs)); err != nil {
		return Quantity[T]{}, err
	}

	values := make([]T, len(qs))
	for i, q := range qs {
		values[i] = q.Value
	}

	grad, err := diff.Gradient(f, values...)
	if err != nil {
		return Quantity[T]{}, err
	}

	var variance T
	for i, g := range grad {
		variance += g * g * qs[i].VarianceSq
	}

	return Quantity[T]{Value: f.Eval(values), VarianceSq: variance}, nil
}

// MeanQuantity returns the unweighted mean of qs with variance Σσᵢ²/n².
// A single quantity is returned unchanged.
//
// Errors:
//   - ErrNoQuantities if qs is empty.
func MeanQuantity[T field.Float](qs []Quantity[T]) (Quantity[T], error) {
	if len(qs) == 0 {
		return Quantity[T]{}, ErrNoQuantities
	}

	var sum, variance T
	for _, q := range qs {
		sum += q.Value
		variance += q.VarianceSq
	}
	n := T(len(qs))

	return Quantity[T]{Value: sum / n, VarianceSq: variance / (n * n)}, nil
}

// WeightedQuantity is an inverse-variance weighted mean together with its
// two variance estimates.
type WeightedQuantity[T field.Float] struct {
	Value T `json:"value"`
	// InternalVarianceSq is 1/Σ(1/σᵢ²), derived from the input variances alone.
	InternalVarianceSq T `json:"internal_variance_sq"`
	// ExternalVarianceSq is the scatter of the values about Value,
	// Σ((xᵢ−x̄)²/σᵢ²)·InternalVarianceSq/(n−1).
	ExternalVarianceSq T `json:"external_variance_sq"`
}

// Internal returns the mean paired with the internal variance.
func (w WeightedQuantity[T]) Internal() Quantity[T] {
	return Quantity[T]{Value: w.Value, VarianceSq: w.InternalVarianceSq}
}

// External returns the mean paired with the external variance.
func (w WeightedQuantity[T]) External() Quantity[T] {
	return Quantity[T]{Value: w.Value, VarianceSq: w.ExternalVarianceSq}
}

// String renders the weighted mean with three significant digits.
func (w WeightedQuantity[T]) String() string {
	return fmt.Sprintf("value: %.3g, internal_uncertainty: %.3g, external_uncertainty: %.3g",
		float64(w.Value), float64(sqrt(w.InternalVarianceSq)), float64(sqrt(w.ExternalVarianceSq)))
}

// MeanWeightedQuantity combines repeated determinations of one quantity,
// weighting each by 1/σᵢ².
//
// A large ExternalVarianceSq relative to InternalVarianceSq signals that
// the inputs disagree more than their stated uncertainties allow.
//
// Errors:
//   - ErrTooFewQuantities if len(qs) < 2.
//   - ErrZeroVariance     if any VarianceSq <= 0.
func MeanWeightedQuantity[T field.Float](qs []Quantity[T]) (WeightedQuantity[T], error) {
	if len(qs) < 2 {
		return WeightedQuantity[T]{}, fmt.Errorf("%w: got %d", ErrTooFewQuantities, len(qs))
	}

	var num, denom T
	for i, q := range qs {
		if !(q.VarianceSq > 0) {
			return WeightedQuantity[T]{}, fmt.Errorf("%w: quantity %d has %v", ErrZeroVariance, i, q.VarianceSq)
		}
		num += q.Value / q.VarianceSq
		denom += 1 / q.VarianceSq
	}
	mean := num / denom
	internal := 1 / denom

	var chi T
	for _, q := range qs {
		d := q.Value - mean
		chi += d * d / q.VarianceSq
	}

	return WeightedQuantity[T]{
		Value:              mean,
		InternalVarianceSq: internal,
		ExternalVarianceSq: chi * internal / T(len(qs)-1),
	}, nil
}
