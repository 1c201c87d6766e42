// SPDX-License-Identifier: MIT

package uncertainty

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/numeric/field"
)

var (
	// ErrTooFewSamples indicates fewer than two samples, for which the
	// sample variance is undefined.
	ErrTooFewSamples = errors.New("uncertainty: at least two samples are required")

	// ErrNoQuantities indicates an empty quantity list.
	ErrNoQuantities = errors.New("uncertainty: no quantities")

	// ErrTooFewQuantities indicates fewer than two quantities where a
	// spread between them is needed.
	ErrTooFewQuantities = errors.New("uncertainty: at least two quantities are required")

	// ErrZeroVariance indicates a non-positive variance where it is used as
	// an inverse weight.
	ErrZeroVariance = errors.New("uncertainty: variance must be positive")
)

// Quantity is a value with its variance (the squared standard uncertainty).
type Quantity[T field.Float] struct {
	Value      T `json:"value"`
	VarianceSq T `json:"variance_sq"`
}

// Uncertainty returns the standard uncertainty √VarianceSq.
func (q Quantity[T]) Uncertainty() T { return sqrt(q.VarianceSq) }

// String renders the quantity with three significant digits.
func (q Quantity[T]) String() string {
	return fmt.Sprintf("value: %.3g, uncertainty: %.3g", float64(q.Value), float64(q.Uncertainty()))
}

// Measurement holds the statistics of one sample set.
type Measurement[T field.Float] struct {
	// Mean is the arithmetic mean of the samples.
	Mean T `json:"mean"`
	// Variance is the Bessel-corrected sample variance (n−1 denominator).
	Variance T `json:"variance"`
	// MeanVarianceSq is the variance of the mean, Variance/n.
	MeanVarianceSq T `json:"mean_variance_sq"`
	// GeneralizedVarianceSq is MeanVarianceSq + d²/3 for device uncertainty d.
	GeneralizedVarianceSq T `json:"generalized_variance_sq"`
	// Count is the number of samples.
	Count int `json:"count"`
}

// Quantity keeps the mean and the generalized variance.
func (m Measurement[T]) Quantity() Quantity[T] {
	return Quantity[T]{Value: m.Mean, VarianceSq: m.GeneralizedVarianceSq}
}

// StdDeviation is √Variance.
func (m Measurement[T]) StdDeviation() T { return sqrt(m.Variance) }

// StdUncertaintyOfMean is √MeanVarianceSq.
func (m Measurement[T]) StdUncertaintyOfMean() T { return sqrt(m.MeanVarianceSq) }

// GeneralizedUncertainty is √GeneralizedVarianceSq.
func (m Measurement[T]) GeneralizedUncertainty() T { return sqrt(m.GeneralizedVarianceSq) }

// String renders the measurement with three significant digits.
func (m Measurement[T]) String() string {
	return fmt.Sprintf("mean: %.3g, std_deviation: %.3g, std_uncertainty_of_mean: %.3g, generalized_uncertainty: %.3g",
		float64(m.Mean),
		float64(m.StdDeviation()),
		float64(m.StdUncertaintyOfMean()),
		float64(m.GeneralizedUncertainty()))
}

// SetupMeasurement computes the statistics of samples for an instrument
// whose reading is uncertain by ±device.
//
// Errors:
//   - ErrTooFewSamples if len(samples) < 2.
func SetupMeasurement[T field.Float](samples []T, device T) (Measurement[T], error) {
	n := len(samples)
	if n < 2 {
		return Measurement[T]{}, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}

	var sum T
	for _, x := range samples {
		sum += x
	}
	mean := sum / T(n)

	var ss T
	for _, x := range samples {
		d := x - mean
		ss += d * d
	}
	variance := ss / T(n-1)
	meanVar := variance / T(n)

	return Measurement[T]{
		Mean:                  mean,
		Variance:              variance,
		MeanVarianceSq:        meanVar,
		GeneralizedVarianceSq: meanVar + device*device/3,
		Count:                 n,
	}, nil
}

func sqrt[T field.Float](v T) T { return T(math.Sqrt(float64(v))) }
