// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numeric/field"
)

// Integrate dispatches to the estimator selected by method, validating the
// resolution parameter it needs first. Unlike the raw estimators it rejects
// unusable parameters instead of degrading silently.
//
// Errors:
//   - ErrBadStep       for Riemann/NewtonCotes with Step <= 0, NaN or ±Inf,
//     checked both as given and after conversion to T.
//   - ErrBadIntervals  for Simpson with Intervals <= 0.
//   - ErrBadOrder      for GaussLegendreN with Order < 1.
//   - ErrUnknownMethod for any other method value.
func Integrate[T field.Float](integral Integral[T], method Method, opts ...Option) (T, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch method {
	case MethodGaussLegendre:
		return GaussLegendre(integral), nil
	case MethodGaussLegendreN:
		return GaussLegendreN(integral, cfg.Order)
	case MethodSimpson:
		if cfg.Intervals <= 0 {
			return 0, fmt.Errorf("%w: got %d", ErrBadIntervals, cfg.Intervals)
		}
		return Simpson(integral, cfg.Intervals), nil
	case MethodNewtonCotes, MethodRiemann:
		if !(cfg.Step > 0) || math.IsInf(cfg.Step, 1) {
			return 0, fmt.Errorf("%w: got %g", ErrBadStep, cfg.Step)
		}
		dx := T(cfg.Step)
		if !(dx > 0) || math.IsInf(float64(dx), 1) {
			return 0, fmt.Errorf("%w: got %g as %T", ErrBadStep, cfg.Step, dx)
		}
		if method == MethodRiemann {
			return RiemannIntegral(integral, dx), nil
		}
		return NewtonCotes(integral, dx), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}
