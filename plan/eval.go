// SPDX-License-Identifier: MIT

package plan

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/numeric/dataset"
	"github.com/katalvlaran/numeric/expr"
	"github.com/katalvlaran/numeric/uncertainty"
)

// Kind tells which section a result came from.
type Kind string

const (
	KindMeasurement Kind = "measurement"
	KindQuantity    Kind = "quantity"
	KindDerived     Kind = "derived"
)

// Result is one evaluated entry.
type Result struct {
	Name        string  `json:"name"`
	Kind        Kind    `json:"kind"`
	Value       float64 `json:"value"`
	Uncertainty float64 `json:"uncertainty"`

	// Measurement is set for measurement entries.
	Measurement *uncertainty.Measurement[float64] `json:"measurement,omitempty"`
	// Weighted is set for weighted_mean entries; Uncertainty then carries
	// the internal estimate.
	Weighted *uncertainty.WeightedQuantity[float64] `json:"weighted,omitempty"`
}

// Quantity returns the result as a propagatable quantity.
func (r Result) Quantity() uncertainty.Quantity[float64] {
	return uncertainty.Quantity[float64]{Value: r.Value, VarianceSq: r.Uncertainty * r.Uncertainty}
}

// String renders the result with three significant digits.
func (r Result) String() string {
	if r.Measurement != nil {
		return fmt.Sprintf("%s: { %s }", r.Name, r.Measurement)
	}
	if r.Weighted != nil {
		return fmt.Sprintf("%s: { %s }", r.Name, r.Weighted)
	}
	return fmt.Sprintf("%s: { %s }", r.Name, r.Quantity())
}

// Evaluator runs plans.
type Evaluator struct {
	// Logger receives one debug entry per evaluated name. Nil discards.
	Logger *zap.Logger
}

func (e Evaluator) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Evaluate computes every entry of p in order. It stops at the first
// failure or when ctx is done.
func (e Evaluator) Evaluate(ctx context.Context, p *Plan) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log := e.logger()
	env := make(map[string]uncertainty.Quantity[float64])
	results := make([]Result, 0, len(p.Measurements)+len(p.Quantities)+len(p.Derived))

	add := func(r Result) {
		env[r.Name] = r.Quantity()
		results = append(results, r)
		log.Debug("evaluated",
			zap.String("name", r.Name),
			zap.String("kind", string(r.Kind)),
			zap.Float64("value", r.Value),
			zap.Float64("uncertainty", r.Uncertainty))
	}

	for _, m := range p.Measurements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := e.measure(p, m)
		if err != nil {
			return nil, fmt.Errorf("measurement %q: %w", m.Name, err)
		}
		add(r)
	}

	for _, q := range p.Quantities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		add(Result{Name: q.Name, Kind: KindQuantity, Value: q.Value, Uncertainty: q.Uncertainty})
	}

	for _, d := range p.Derived {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		args := make([]uncertainty.Quantity[float64], len(d.Args))
		for i, name := range d.Args {
			args[i] = env[name]
		}
		r, err := derive(ctx, d, args)
		if err != nil {
			return nil, fmt.Errorf("derived %q: %w", d.Name, err)
		}
		add(r)
	}

	return results, nil
}

func (e Evaluator) measure(p *Plan, m Measurement) (Result, error) {
	samples := m.Samples
	if m.Dataset != "" {
		var err error
		if samples, err = dataset.ReadFile[float64](p.datasetPath(m.Dataset)); err != nil {
			return Result{}, err
		}
		e.logger().Debug("dataset loaded", zap.String("path", m.Dataset), zap.Int("samples", len(samples)))
	}

	meas, err := uncertainty.SetupMeasurement(samples, m.DeviceUncertainty)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Name:        m.Name,
		Kind:        KindMeasurement,
		Value:       meas.Mean,
		Uncertainty: meas.GeneralizedUncertainty(),
		Measurement: &meas,
	}, nil
}

func derive(ctx context.Context, d Derived, args []uncertainty.Quantity[float64]) (Result, error) {
	r := Result{Name: d.Name, Kind: KindDerived}

	switch d.op() {
	case OpExpr:
		fn, err := expr.Compile(d.Expr, d.Args...)
		if err != nil {
			return Result{}, err
		}
		stop := context.AfterFunc(ctx, fn.Interrupt)
		defer stop()

		q, err := uncertainty.CombineQuantities[float64](fn, args...)
		if err != nil {
			return Result{}, err
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := fn.Err(); err != nil {
			return Result{}, err
		}
		r.Value, r.Uncertainty = q.Value, q.Uncertainty()
	case OpMean:
		q, err := uncertainty.MeanQuantity(args)
		if err != nil {
			return Result{}, err
		}
		r.Value, r.Uncertainty = q.Value, q.Uncertainty()
	case OpWeightedMean:
		w, err := uncertainty.MeanWeightedQuantity(args)
		if err != nil {
			return Result{}, err
		}
		r.Value, r.Uncertainty = w.Value, w.Internal().Uncertainty()
		r.Weighted = &w
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, d.Op)
	}

	return r, nil
}
