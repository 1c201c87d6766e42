// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numeric/diff"
	"github.com/katalvlaran/numeric/expr"
	"github.com/katalvlaran/numeric/quadrature"
	"github.com/katalvlaran/numeric/roots"
)

// errNonFinite reports a NaN or ±Inf result, which the JSON envelope
// cannot carry.
var errNonFinite = errors.New("result is not finite")

// unary compiles src as a function of one variable.
func unary(src, variable string) (*expr.Expr, func(float64) float64, error) {
	e, err := expr.Compile(src, variable)
	if err != nil {
		return nil, nil, err
	}
	arg := make([]float64, 1)
	return e, func(x float64) float64 {
		arg[0] = x
		return e.Eval(arg)
	}, nil
}

// checkValue turns an evaluation failure or NaN into an error.
func checkValue(e *expr.Expr, v float64) error {
	if err := e.Err(); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s = %g", errNonFinite, e, v)
	}
	return nil
}

// finite reports the first NaN or ±Inf among vals, naming what they are.
func finite(what string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s = %g", errNonFinite, what, v)
		}
	}
	return nil
}

// cancelled reports whether err comes from a done context.
func cancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// compute runs fn on its own goroutine and returns ctx.Err() as soon as
// ctx is done. Expressions bound to ctx with context.AfterFunc stop
// evaluating at that point, so fn winds down on its own.
func compute[R any](ctx context.Context, fn func() (R, error)) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type outcome struct {
		v   R
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := fn()
		done <- outcome{v, err}
	}()

	select {
	case o := <-done:
		return o.v, o.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// ------------------------------------------------------------------------
// integrate
// ------------------------------------------------------------------------

// IntegrateResult is the output of the integrate command.
type IntegrateResult struct {
	Expr   string  `json:"expr"`
	Method string  `json:"method"`
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
	Value  float64 `json:"value"`
}

func (r IntegrateResult) String() string {
	return fmt.Sprintf("%s over [%g, %g] (%s): %.12g", r.Expr, r.Low, r.High, r.Method, r.Value)
}

type integrateOptions struct {
	variable  string
	low, high float64
	method    string
	intervals int
	step      float64
	order     int
}

// NewIntegrateCommand creates the integrate command.
func NewIntegrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &integrateOptions{}

	cmd := &cobra.Command{
		Use:   "integrate <expr>",
		Short: "Approximate a definite integral",
		Long: `Approximate the integral of expr over [--low, --high].

Methods: ` + strings.Join(methodNames(), ", ") + `.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntegrate(rootOpts, opts, args[0], cmd)
		},
	}

	solver := rootOpts.Config.SolverConfig
	cmd.Flags().StringVar(&opts.variable, "var", "x", "integration variable")
	cmd.Flags().Float64Var(&opts.low, "low", 0, "lower bound")
	cmd.Flags().Float64Var(&opts.high, "high", 1, "upper bound")
	cmd.Flags().StringVarP(&opts.method, "method", "m", quadrature.MethodGaussLegendre.String(), "quadrature method")
	cmd.Flags().IntVarP(&opts.intervals, "intervals", "n", solver.SimpsonIntervals, "simpson sub-intervals (even)")
	cmd.Flags().Float64Var(&opts.step, "step", solver.RiemannStep, "riemann/newton-cotes step")
	cmd.Flags().IntVar(&opts.order, "order", solver.GaussOrder, "gauss-n order")

	return cmd
}

func methodNames() []string {
	ms := quadrature.Methods()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return names
}

func runIntegrate(rootOpts *RootOptions, opts *integrateOptions, src string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)

	method, err := quadrature.ParseMethod(opts.method)
	if err != nil {
		return f.inputError(err)
	}
	e, fn, err := unary(src, opts.variable)
	if err != nil {
		return f.inputError(err)
	}

	ctx := cmd.Context()
	stop := context.AfterFunc(ctx, e.Interrupt)
	defer stop()

	in := quadrature.Integral[float64]{Low: opts.low, High: opts.high, Function: fn}
	v, err := compute(ctx, func() (float64, error) {
		return quadrature.Integrate(in, method,
			quadrature.WithIntervals(opts.intervals),
			quadrature.WithStep(opts.step),
			quadrature.WithOrder(opts.order))
	})
	switch {
	case cancelled(err):
		return f.interruptedError(err)
	case err != nil:
		return f.inputError(err)
	}
	if err := checkValue(e, v); err != nil {
		return f.numericError(err)
	}

	rootOpts.Logger.Debug("integrated", zap.String("method", method.String()), zap.Float64("value", v))

	return f.Success(IntegrateResult{Expr: src, Method: method.String(), Low: opts.low, High: opts.high, Value: v})
}

// ------------------------------------------------------------------------
// diff
// ------------------------------------------------------------------------

// DiffResult is the output of the diff command.
type DiffResult struct {
	Expr     string    `json:"expr"`
	Vars     []string  `json:"vars"`
	At       []float64 `json:"at"`
	Value    float64   `json:"value"`
	Gradient []float64 `json:"gradient"`
}

func (r DiffResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %.12g", r.Expr, r.Value)
	for i, v := range r.Vars {
		fmt.Fprintf(&b, "\nd/d%s = %.12g", v, r.Gradient[i])
	}
	return b.String()
}

type diffOptions struct {
	vars []string
	at   []float64
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <expr>",
		Short: "Evaluate the gradient of an expression at a point",
		Long: `Evaluate expr and every partial derivative at the point --at, using
central differences. --vars names the variables in the order of --at.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringSliceVar(&opts.vars, "vars", []string{"x"}, "variable names")
	cmd.Flags().Float64SliceVar(&opts.at, "at", []float64{0}, "evaluation point")

	return cmd
}

func runDiff(rootOpts *RootOptions, opts *diffOptions, src string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)

	e, err := expr.Compile(src, opts.vars...)
	if err != nil {
		return f.inputError(err)
	}
	ctx := cmd.Context()
	stop := context.AfterFunc(ctx, e.Interrupt)
	defer stop()

	res, err := compute(ctx, func() (DiffResult, error) {
		grad, err := diff.Gradient[float64](e, opts.at...)
		return DiffResult{Gradient: grad, Value: e.Eval(opts.at)}, err
	})
	switch {
	case cancelled(err):
		return f.interruptedError(err)
	case err != nil:
		return f.inputError(err)
	}
	if err := checkValue(e, res.Value); err != nil {
		return f.numericError(err)
	}
	for i, g := range res.Gradient {
		if err := finite("d/d"+opts.vars[i], g); err != nil {
			return f.numericError(err)
		}
	}

	return f.Success(DiffResult{Expr: src, Vars: opts.vars, At: opts.at, Value: res.Value, Gradient: res.Gradient})
}

// ------------------------------------------------------------------------
// root
// ------------------------------------------------------------------------

// RootResult is the output of the root command.
type RootResult struct {
	Expr       string  `json:"expr"`
	Method     string  `json:"method"`
	Root       float64 `json:"root"`
	Residual   float64 `json:"residual"`
	Iterations int     `json:"iterations"`
}

func (r RootResult) String() string {
	return fmt.Sprintf("%s = 0 at %.15g (%s, %d iterations, residual %.3g)",
		r.Expr, r.Root, r.Method, r.Iterations, r.Residual)
}

type rootOptions struct {
	variable   string
	method     string
	low, high  float64
	x0         float64
	iterations int
}

// NewRootFindCommand creates the root command.
func NewRootFindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "root <expr>",
		Short: "Find a zero of an expression",
		Long: `Find x with expr(x) = 0.

  bisection  halves [--low, --high], which must bracket a sign change
  newton     Newton-Raphson from --x0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.variable, "var", "x", "variable name")
	cmd.Flags().StringVarP(&opts.method, "method", "m", "bisection", "bisection|newton")
	cmd.Flags().Float64Var(&opts.low, "low", 0, "bracket lower bound (bisection)")
	cmd.Flags().Float64Var(&opts.high, "high", 1, "bracket upper bound (bisection)")
	cmd.Flags().Float64Var(&opts.x0, "x0", 1, "starting point (newton)")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 0, "iteration count (default from config per method)")

	return cmd
}

func runRoot(rootOpts *RootOptions, opts *rootOptions, src string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)
	solver := rootOpts.Config.SolverConfig

	e, fn, err := unary(src, opts.variable)
	if err != nil {
		return f.inputError(err)
	}

	trace := roots.WithOnStep(func(i int, x float64) {
		f.VerboseLog("step %d: %s = %.15g", i, opts.variable, x)
	})

	n := opts.iterations
	var solve func() (float64, error)
	switch opts.method {
	case "bisection":
		if !cmd.Flags().Changed("iterations") {
			n = solver.BisectionIterations
		}
		solve = func() (float64, error) { return roots.Bisection(fn, opts.low, opts.high, n, trace) }
	case "newton":
		if !cmd.Flags().Changed("iterations") {
			n = solver.NewtonIterations
		}
		solve = func() (float64, error) { return roots.NewtonRaphson(fn, opts.x0, n, trace), nil }
	default:
		return f.inputError(fmt.Errorf("unknown method %q: want bisection or newton", opts.method))
	}

	ctx := cmd.Context()
	stop := context.AfterFunc(ctx, e.Interrupt)
	defer stop()

	x, err := compute(ctx, solve)
	switch {
	case cancelled(err):
		return f.interruptedError(err)
	case errors.Is(err, roots.ErrBadInterval), errors.Is(err, roots.ErrBadIterations):
		return f.inputError(err)
	case err != nil:
		return f.numericError(err)
	}

	residual := fn(x)
	if err := checkValue(e, residual); err != nil {
		return f.numericError(err)
	}

	rootOpts.Logger.Debug("root found", zap.String("method", opts.method), zap.Float64("root", x))

	return f.Success(RootResult{Expr: src, Method: opts.method, Root: x, Residual: residual, Iterations: n})
}
