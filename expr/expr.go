// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dop251/goja"

	"github.com/katalvlaran/numeric/field"
)

var (
	// ErrNoParams indicates an expression compiled without parameters.
	ErrNoParams = errors.New("expr: at least one parameter is required")

	// ErrBadParam indicates a parameter name that is not a plain identifier
	// or is repeated.
	ErrBadParam = errors.New("expr: invalid parameter name")

	// ErrCompile indicates a syntax error in the expression.
	ErrCompile = errors.New("expr: compile failed")

	// ErrRuntime indicates that evaluation threw.
	ErrRuntime = errors.New("expr: evaluation failed")

	// ErrNotNumber indicates that evaluation produced a non-numeric value.
	ErrNotNumber = errors.New("expr: result is not a number")

	// ErrInterrupted indicates that Interrupt stopped evaluation.
	ErrInterrupted = errors.New("expr: interrupted")
)

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var _ field.ScalarField[float64] = (*Expr)(nil)

// Expr is a compiled expression of fixed arity.
type Expr struct {
	src    string
	params []string

	mu   sync.Mutex
	vm   *goja.Runtime
	fn   goja.Callable
	argv []goja.Value
	err  error

	halted atomic.Bool
}

// Compile parses src as the body of a function of params.
//
// Errors:
//   - ErrNoParams if params is empty.
//   - ErrBadParam if a name is not an identifier or appears twice.
//   - ErrCompile  if src does not parse or does not yield a function.
func Compile(src string, params ...string) (*Expr, error) {
	if len(params) == 0 {
		return nil, ErrNoParams
	}
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if !identRe.MatchString(p) {
			return nil, fmt.Errorf("%w: %q", ErrBadParam, p)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %q repeated", ErrBadParam, p)
		}
		seen[p] = struct{}{}
	}

	wrapped := fmt.Sprintf("(function(%s) { with (Math) { return (%s\n); } })",
		strings.Join(params, ", "), src)

	prog, err := goja.Compile("expr", wrapped, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}

	vm := goja.New()
	v, err := vm.RunProgram(prog)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an expression", ErrCompile, src)
	}

	return &Expr{
		src:    src,
		params: append([]string(nil), params...),
		vm:     vm,
		fn:     fn,
		argv:   make([]goja.Value, len(params)),
	}, nil
}

// Arity returns the number of parameters.
func (e *Expr) Arity() int { return len(e.params) }

// Params returns a copy of the parameter names in declaration order.
func (e *Expr) Params() []string { return append([]string(nil), e.params...) }

// String returns the expression source.
func (e *Expr) String() string { return e.src }

// Eval binds args to the parameters in order and evaluates the
// expression. It returns NaN on failure; see Err.
func (e *Expr) Eval(args []float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.halted.Load() {
		e.fail(fmt.Errorf("%w: %s", ErrInterrupted, e.src))
		return math.NaN()
	}
	if err := field.CheckArity[float64](e, len(args)); err != nil {
		e.fail(err)
		return math.NaN()
	}
	for i, a := range args {
		e.argv[i] = e.vm.ToValue(a)
	}

	v, err := e.fn(goja.Undefined(), e.argv...)
	var interrupted *goja.InterruptedError
	switch {
	case errors.As(err, &interrupted):
		e.fail(fmt.Errorf("%w: %s", ErrInterrupted, e.src))
		return math.NaN()
	case err != nil:
		e.fail(fmt.Errorf("%w: %s: %w", ErrRuntime, e.src, err))
		return math.NaN()
	}

	switch x := v.Export().(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	default:
		e.fail(fmt.Errorf("%w: %s returned %s", ErrNotNumber, e.src, v.String()))
		return math.NaN()
	}
}

// fail records err unless an earlier failure is already pending.
func (e *Expr) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Err returns the first failure of any Eval since Compile or the last
// Reset, or nil if every evaluation succeeded. A kernel that evaluates the
// expression many times is covered by one Err check after it returns.
func (e *Expr) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.err
}

// Reset clears the pending failure.
func (e *Expr) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.err = nil
}

// Interrupt aborts a running Eval and makes every later Eval return NaN
// with ErrInterrupted. It is safe to call from any goroutine, typically
// through context.AfterFunc.
func (e *Expr) Interrupt() {
	e.halted.Store(true)
	e.vm.Interrupt(ErrInterrupted)
}
