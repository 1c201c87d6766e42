// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numeric/dataset"
	"github.com/katalvlaran/numeric/expr"
	"github.com/katalvlaran/numeric/plan"
	"github.com/katalvlaran/numeric/uncertainty"
)

// loadSamples reads one dataset and reports failures through f.
func loadSamples(f *OutputFormatter, path string) ([]float64, error) {
	samples, err := dataset.ReadFile[float64](path)
	switch {
	case errors.Is(err, dataset.ErrOpen):
		return nil, f.ioError(err)
	case err != nil:
		return nil, f.inputError(err)
	}
	f.VerboseLog("%s: %d samples", path, len(samples))
	return samples, nil
}

// ------------------------------------------------------------------------
// measure
// ------------------------------------------------------------------------

// MeasureResult describes one dataset.
type MeasureResult struct {
	Path        string                           `json:"path"`
	Summary     dataset.Summary                  `json:"summary"`
	Measurement uncertainty.Measurement[float64] `json:"measurement"`
}

// MeasureReport is the output of the measure command.
type MeasureReport []MeasureResult

func (r MeasureReport) String() string {
	lines := make([]string, len(r))
	for i, m := range r {
		lines[i] = fmt.Sprintf("%s: { %s } { %s }", m.Path, m.Measurement, m.Summary)
	}
	return strings.Join(lines, "\n")
}

type measureOptions struct {
	device float64
}

// NewMeasureCommand creates the measure command.
func NewMeasureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &measureOptions{}

	cmd := &cobra.Command{
		Use:   "measure <dataset>...",
		Short: "Compute measurement statistics of sample files",
		Long: `Read each dataset (plain, .gz or .zst) and report its mean, sample
standard deviation, standard uncertainty of the mean and the generalized
uncertainty including the instrument's --device uncertainty.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.device, "device", "d", 0, "instrument uncertainty (half-width)")

	return cmd
}

func runMeasure(rootOpts *RootOptions, opts *measureOptions, paths []string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)

	report := make(MeasureReport, 0, len(paths))
	for _, path := range paths {
		samples, err := loadSamples(f, path)
		if err != nil {
			return err
		}
		m, err := uncertainty.SetupMeasurement(samples, opts.device)
		if err != nil {
			return f.numericError(fmt.Errorf("%s: %w", path, err))
		}
		summary, err := dataset.Describe(samples)
		if err != nil {
			return f.numericError(fmt.Errorf("%s: %w", path, err))
		}
		rootOpts.Logger.Debug("measured", zap.String("path", path), zap.Int("samples", m.Count))
		report = append(report, MeasureResult{Path: path, Summary: summary, Measurement: m})
	}

	return f.Success(report)
}

// ------------------------------------------------------------------------
// ttest
// ------------------------------------------------------------------------

// TTestResult is the output of the ttest command.
type TTestResult struct {
	A    string            `json:"a"`
	B    string            `json:"b"`
	Test uncertainty.TTest `json:"test"`
}

func (r TTestResult) String() string {
	return fmt.Sprintf("%s vs %s: { %s }", r.A, r.B, r.Test)
}

type ttestOptions struct {
	device float64
}

// NewTTestCommand creates the ttest command.
func NewTTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ttestOptions{}

	cmd := &cobra.Command{
		Use:   "ttest <dataset-a> <dataset-b>",
		Short: "Two-sample Student's t test",
		Long: `Test whether two sample files share a mean, assuming equal variances.
Reports the pooled t statistic, degrees of freedom and two-sided p-value.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTTest(rootOpts, opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.device, "device", "d", 0, "instrument uncertainty (half-width)")

	return cmd
}

func runTTest(rootOpts *RootOptions, opts *ttestOptions, pathA, pathB string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)

	var ms [2]uncertainty.Measurement[float64]
	for i, path := range []string{pathA, pathB} {
		samples, err := loadSamples(f, path)
		if err != nil {
			return err
		}
		if ms[i], err = uncertainty.SetupMeasurement(samples, opts.device); err != nil {
			return f.numericError(fmt.Errorf("%s: %w", path, err))
		}
	}

	res, err := uncertainty.StudentT(ms[0], ms[1])
	if err != nil {
		return f.numericError(err)
	}
	if err := finite("t statistic", res.Statistic, res.PValue); err != nil {
		return f.numericError(err)
	}
	rootOpts.Logger.Debug("t test", zap.Float64("t", res.Statistic), zap.Float64("p", res.PValue))

	return f.Success(TTestResult{A: pathA, B: pathB, Test: res})
}

// ------------------------------------------------------------------------
// propagate
// ------------------------------------------------------------------------

// PropagateReport is the output of the propagate command.
type PropagateReport []plan.Result

func (r PropagateReport) String() string {
	lines := make([]string, len(r))
	for i, res := range r {
		lines[i] = res.String()
	}
	return strings.Join(lines, "\n")
}

// NewPropagateCommand creates the propagate command.
func NewPropagateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propagate <plan>",
		Short: "Evaluate a measurement plan",
		Long: `Evaluate a YAML or TOML measurement plan: load every measurement,
then propagate uncertainty through each derived quantity in order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropagate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runPropagate(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)

	p, err := plan.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, plan.ErrUnsupportedFormat), errors.Is(err, plan.ErrDecode), isPlanValidation(err):
		return f.inputError(err)
	default:
		return f.ioError(err)
	}
	f.VerboseLog("%s: %d measurements, %d quantities, %d derived",
		path, len(p.Measurements), len(p.Quantities), len(p.Derived))

	results, err := plan.Evaluator{Logger: rootOpts.Logger}.Evaluate(cmd.Context(), p)
	switch {
	case cancelled(err):
		return f.interruptedError(err)
	case errors.Is(err, dataset.ErrOpen):
		return f.ioError(err)
	case errors.Is(err, dataset.ErrParse), errors.Is(err, expr.ErrCompile), errors.Is(err, expr.ErrBadParam):
		return f.inputError(err)
	case err != nil:
		return f.numericError(err)
	}
	for _, r := range results {
		if err := finite(r.Name, r.Value, r.Uncertainty); err != nil {
			return f.numericError(err)
		}
	}

	return f.Success(PropagateReport(results))
}

func isPlanValidation(err error) bool {
	for _, target := range []error{
		plan.ErrEmptyName, plan.ErrDuplicateName, plan.ErrUnknownName,
		plan.ErrNoSource, plan.ErrUnknownOp, plan.ErrNoArgs,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
