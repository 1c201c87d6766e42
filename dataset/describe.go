// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample set.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// String renders the summary with three significant digits.
func (s Summary) String() string {
	return fmt.Sprintf("n: %d, min: %.3g, max: %.3g, mean: %.3g, std_dev: %.3g",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev)
}

// Describe summarises samples. StdDev is the Bessel-corrected sample
// standard deviation, reported as 0 for a single sample.
//
// Errors:
//   - ErrEmpty if samples is empty.
func Describe(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrEmpty
	}

	s := Summary{
		Count: len(samples),
		Min:   floats.Min(samples),
		Max:   floats.Max(samples),
	}
	if s.Count == 1 {
		s.Mean = samples[0]
		return s, nil
	}
	s.Mean, s.StdDev = stat.MeanStdDev(samples, nil)

	return s, nil
}
