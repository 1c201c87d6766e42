// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/numeric/internal/config"
)

// envelope decodes a CLIResponse with a typed payload.
type envelope[T any] struct {
	Status string    `json:"status"`
	Data   T         `json:"data"`
	Error  *CLIError `json:"error"`
}

// execute runs the command tree with args and captures both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

// executeContext is execute under ctx.
func executeContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(&RootOptions{Config: config.Default(), Logger: zap.NewNop()})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

// executeJSON runs args with --format json and decodes stdout.
func executeJSON[T any](t *testing.T, args ...string) (envelope[T], error) {
	t.Helper()
	out, _, err := execute(t, append([]string{"--format", "json"}, args...)...)

	var env envelope[T]
	require.NoError(t, json.Unmarshal([]byte(out), &env), "stdout: %s", out)
	return env, err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(nil)
	require.NotNil(t, cmd)
	assert.Equal(t, "numerik", cmd.Use)
	assert.Contains(t, cmd.Long, "uncertainty")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil)
	commands := []string{"integrate", "diff", "root", "measure", "propagate", "ttest"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(nil)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestFlagDefaultsFollowConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "json"
	cfg.SimpsonIntervals = 64
	cfg.RiemannStep = 0.25
	cfg.GaussOrder = 5

	cmd := NewRootCommand(cfg)
	assert.Equal(t, "json", cmd.PersistentFlags().Lookup("format").DefValue)

	integrate, _, err := cmd.Find([]string{"integrate"})
	require.NoError(t, err)
	assert.Equal(t, "64", integrate.Flags().Lookup("intervals").DefValue)
	assert.Equal(t, "0.25", integrate.Flags().Lookup("step").DefValue)
	assert.Equal(t, "5", integrate.Flags().Lookup("order").DefValue)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	_, _, err := execute(t, "--format", "invalid", "integrate", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoggerBuiltFromConfig(t *testing.T) {
	opts := &RootOptions{Config: config.Default()}
	cmd := newRootCommand(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"integrate", "x"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, opts.Logger)
	assert.False(t, opts.Logger.Core().Enabled(zap.InfoLevel), "default level is warn")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitInterrupted, GetExitCode(WrapExitError(ExitInterrupted, ErrCodeGeneric, context.Canceled)))

	wrapped := WrapExitError(ExitFailure, "E004", errors.New("inner"))
	assert.Equal(t, "E004: inner", wrapped.Error())
	assert.Equal(t, "inner", errors.Unwrap(wrapped).Error())
}
