// SPDX-License-Identifier: MIT

// Package cli implements the numerik command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numeric/internal/config"
	"github.com/katalvlaran/numeric/internal/logging"
)

// RootOptions holds global flags and shared state for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Config supplies flag defaults.
	Config *config.Config
	// Logger is built from Config on first use unless set by the caller.
	Logger *zap.Logger

	started time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. A nil cfg means config.Default().
func NewRootCommand(cfg *config.Config) *cobra.Command {
	return newRootCommand(&RootOptions{Config: cfg})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	if opts.Config == nil {
		opts.Config = config.Default()
	}

	cmd := &cobra.Command{
		Use:   "numerik",
		Short: "numerik - numerical analysis toolkit",
		Long: `Integrate, differentiate and find roots of expressions, and propagate
measurement uncertainty from sample files or measurement plans.

Expressions are JavaScript with Math in scope, e.g. "sin(x) * exp(-x)".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Logger == nil {
				lc := logging.DefaultConfig()
				lc.Level = opts.Config.Level
				lc.Development = opts.Config.Development
				if opts.Verbose {
					lc.Level = "debug"
				}
				log, err := logging.New(lc)
				if err != nil {
					return WrapExitError(ExitCommandError, "logger", err)
				}
				opts.Logger = log.Logger
			}
			opts.started = time.Now()
			opts.Logger.Debug("command started", zap.String("command", cmd.Name()), zap.Strings("args", args))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.Logger.Debug("command finished",
				zap.String("command", cmd.Name()),
				zap.Duration("elapsed", time.Since(opts.started)))
			_ = opts.Logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Config.Format, "output format (json|text)")

	cmd.AddCommand(NewIntegrateCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewRootFindCommand(opts))
	cmd.AddCommand(NewMeasureCommand(opts))
	cmd.AddCommand(NewPropagateCommand(opts))
	cmd.AddCommand(NewTTestCommand(opts))

	return cmd
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
