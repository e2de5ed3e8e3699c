// In file: internal/reason/dispatcher.go
package reason

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// ErrUnknownTool marks a result for a call naming a tool that is not in
// the registry. It is recovered per call: the failure is rendered into the
// follow-up prompt and later requests in the batch still execute.
var ErrUnknownTool = errors.New("unknown tool")

// ExecutionError wraps a failure inside a tool invocation: an arity or type
// mismatch against the declared signature, or a domain violation reported
// by the tool itself. Like ErrUnknownTool it is recovered per call.
type ExecutionError struct {
	Tool  string
	Cause error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("tool %q failed: %v", e.Tool, e.Cause)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

// Result pairs a request with its outcome. Exactly one of Value and Err is
// set.
type Result struct {
	Request Request
	Value   tools.Value
	Err     error
}

// Render formats the result the way it is embedded into the follow-up
// prompt: name(args) = value on success, name(args) -> error: cause on
// failure.
func (r Result) Render() string {
	call := fmt.Sprintf("%s(%s)", r.Request.Name, r.Request.RawArgs)
	if r.Err != nil {
		return fmt.Sprintf("%s -> error: %v", call, r.Err)
	}
	return fmt.Sprintf("%s = %s", call, r.Value)
}

// maxConcurrentCalls bounds parallel tool executions within one round.
// Tools are pure and cheap; the limit mostly guards against a model
// emitting a pathological number of calls at once.
const maxConcurrentCalls = 4

// Dispatcher resolves extracted requests against the registry, coerces
// their arguments, and executes them. It never mutates the registry and
// never retries a failed call.
type Dispatcher struct {
	registry *tools.Registry
}

func NewDispatcher(registry *tools.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch executes every request and returns one result per request, in
// the same order as the requests. Executions within the batch are
// independent pure computations and run concurrently, but results are
// reassembled by index so ordering presented back to the model never
// depends on completion order. Per-call failures are recorded in the
// result, not returned; Dispatch itself only fails on context
// cancellation.
func (d *Dispatcher) Dispatch(ctx context.Context, requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCalls)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = d.dispatchOne(req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Dispatcher) dispatchOne(req Request) Result {
	spec, ok := d.registry.Lookup(req.Name)
	if !ok {
		return Result{Request: req, Err: fmt.Errorf("%w: %q", ErrUnknownTool, req.Name)}
	}

	args := make([]tools.Value, len(req.Args))
	for i, raw := range req.Args {
		args[i] = tools.Coerce(raw)
	}

	if err := validateArgs(spec, args); err != nil {
		return Result{Request: req, Err: &ExecutionError{Tool: req.Name, Cause: err}}
	}

	value, err := spec.Fn(args)
	if err != nil {
		return Result{Request: req, Err: &ExecutionError{Tool: req.Name, Cause: err}}
	}
	return Result{Request: req, Value: value}
}

// validateArgs checks the coerced arguments against the tool's declared
// arity and argument kind. For text tools, numeric tokens are converted to
// their textual form so that count_digits(12345) sees the digits it was
// given.
func validateArgs(spec tools.Spec, args []tools.Value) error {
	if len(args) < spec.MinArgs {
		return fmt.Errorf("expects at least %d argument(s), got %d", spec.MinArgs, len(args))
	}
	if spec.MaxArgs != tools.Variadic && len(args) > spec.MaxArgs {
		return fmt.Errorf("expects at most %d argument(s), got %d", spec.MaxArgs, len(args))
	}

	switch spec.Args {
	case tools.ArgsNumeric:
		for i, a := range args {
			if !a.IsNumeric() {
				return fmt.Errorf("argument %d must be a number, got %s %q", i+1, a.Kind(), a)
			}
		}
	case tools.ArgsText:
		for i, a := range args {
			if a.Kind() != tools.KindString {
				args[i] = tools.StringValue(a.String())
			}
		}
	}
	return nil
}
