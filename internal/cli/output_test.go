// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	require.NoError(t, formatter.Success(map[string]float64{"value": 1.5}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	require.NoError(t, formatter.Error(ErrCodeNumeric, "root is not bracketed", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNumeric, resp.Error.Code)
	assert.Equal(t, "root is not bracketed", resp.Error.Message)
}

func TestOutputFormatter_JSONNonFiniteBecomesError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(IntegrateResult{Expr: "x", Value: math.Inf(-1)})
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp), "stdout: %q", buf.String())
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNumeric, resp.Error.Code)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	require.NoError(t, formatter.Success(IntegrateResult{Expr: "x", Method: "gauss", Low: 0, High: 1, Value: 0.5}))
	assert.Equal(t, "x over [0, 1] (gauss): 0.5\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	require.NoError(t, formatter.Error(ErrCodeIO, "cannot open", "a.txt"))
	assert.Contains(t, buf.String(), "Error [E003]: cannot open")
	assert.Contains(t, buf.String(), "Details: a.txt")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut}

	formatter.VerboseLog("hidden %d", 1)
	assert.Empty(t, errOut.String())

	formatter.Verbose = true
	formatter.VerboseLog("step %d", 2)
	assert.Equal(t, "step 2\n", errOut.String())
	assert.Empty(t, out.String(), "verbose output must not corrupt JSON")
}

func TestOutputFormatter_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	inner := errors.New("boom")
	err := formatter.numericError(inner)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, buf.String(), "E004")

	err = formatter.inputError(inner)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	err = formatter.ioError(inner)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	buf.Reset()
	err = formatter.interruptedError(inner)
	assert.Equal(t, ExitInterrupted, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeGeneric)
}
