// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0   // Successful execution
	ExitFailure      = 1   // Numeric failure (root not bracketed, too few samples, NaN result)
	ExitCommandError = 2   // Command error (bad flags, unreadable files, invalid expressions)
	ExitInterrupted  = 130 // Cancelled by SIGINT
)

// Error codes reported in the JSON envelope.
const (
	ErrCodeGeneric = "E001" // Generic error, including cancellation
	ErrCodeInput   = "E002" // Invalid argument, expression or plan
	ErrCodeIO      = "E003" // File could not be opened or read
	ErrCodeNumeric = "E004" // Numeric precondition or degenerate result
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success outputs a successful result in the configured format.
// A payload JSON cannot represent (NaN, ±Inf) is reported as a numeric
// error envelope instead.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		b, err := json.Marshal(CLIResponse{
			Status: "ok",
			Data:   data,
		})
		if err != nil {
			return f.numericError(err)
		}
		_, err = f.Writer.Write(append(b, '\n'))
		return err
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// It writes to ErrWriter when set so JSON output stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// fail reports err through the formatter and returns it with an exit code.
func (f *OutputFormatter) fail(code string, exitCode int, err error) error {
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(exitCode, code, err)
}

func (f *OutputFormatter) inputError(err error) error {
	return f.fail(ErrCodeInput, ExitCommandError, err)
}

func (f *OutputFormatter) ioError(err error) error {
	return f.fail(ErrCodeIO, ExitCommandError, err)
}

func (f *OutputFormatter) numericError(err error) error {
	return f.fail(ErrCodeNumeric, ExitFailure, err)
}

func (f *OutputFormatter) interruptedError(err error) error {
	return f.fail(ErrCodeGeneric, ExitInterrupted, err)
}
