// SPDX-License-Identifier: MIT

package uncertainty

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/numeric/field"
)

// TTest is the outcome of a two-sample Student's t test.
type TTest struct {
	// Statistic is t = (x̄₁ − x̄₂) / (sₚ·√(1/n₁ + 1/n₂)).
	Statistic float64 `json:"statistic"`
	// DegreesOfFreedom is n₁ + n₂ − 2.
	DegreesOfFreedom float64 `json:"degrees_of_freedom"`
	// PValue is the two-sided tail probability of |Statistic|.
	PValue float64 `json:"p_value"`
}

// String renders the test with three significant digits.
func (t TTest) String() string {
	return fmt.Sprintf("t: %.3g, df: %g, p: %.3g", t.Statistic, t.DegreesOfFreedom, t.PValue)
}

// StudentT tests whether two measurements share a mean, assuming equal
// population variances. The pooled standard deviation is
//
//	sₚ = √(((n₁−1)·s₁² + (n₂−1)·s₂²) / (n₁+n₂−2))
//
// with sample sizes taken from Measurement.Count.
//
// Two sample sets with zero spread give a statistic of ±Inf (or NaN for
// equal means) and the p-value follows.
//
// Errors:
//   - ErrTooFewSamples if either Count < 2.
func StudentT[T field.Float](m1, m2 Measurement[T]) (TTest, error) {
	if m1.Count < 2 || m2.Count < 2 {
		return TTest{}, fmt.Errorf("%w: counts %d and %d", ErrTooFewSamples, m1.Count, m2.Count)
	}

	n1, n2 := float64(m1.Count), float64(m2.Count)
	df := n1 + n2 - 2
	sp := math.Sqrt(((n1-1)*float64(m1.Variance) + (n2-1)*float64(m2.Variance)) / df)
	stat := (float64(m1.Mean) - float64(m2.Mean)) / (sp * math.Sqrt(1/n1+1/n2))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return TTest{
		Statistic:        stat,
		DegreesOfFreedom: df,
		PValue:           2 * dist.Survival(math.Abs(stat)),
	}, nil
}
