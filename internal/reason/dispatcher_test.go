// In file: internal/reason/dispatcher_test.go
package reason

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

func fullRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	r := tools.NewRegistry()
	require.NoError(t, tools.RegisterMathTools(r))
	require.NoError(t, tools.RegisterStringTools(r))
	return r
}

func dispatch(t *testing.T, text string) []Result {
	t.Helper()
	d := NewDispatcher(fullRegistry(t))
	results, err := d.Dispatch(context.Background(), Extract(text))
	require.NoError(t, err)
	return results
}

func TestDispatchSingleCall(t *testing.T) {
	results := dispatch(t, "TOOL_CALL: average(18, 50)")
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "34", results[0].Value.String())
	assert.Equal(t, "average(18, 50) = 34", results[0].Render())
}

func TestDispatchPreservesRequestOrder(t *testing.T) {
	text := "TOOL_CALL: factorial(15)\nTOOL_CALL: factorial(10)\n" +
		"TOOL_CALL: sum(1, 2, 3)\nTOOL_CALL: product(4, 5)\n" +
		"TOOL_CALL: power(2, 10)\nTOOL_CALL: is_prime(97)"

	results := dispatch(t, text)
	require.Len(t, results, 6)

	want := []string{"1307674368000", "3628800", "6", "20", "1024", "true"}
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, want[i], res.Value.String(), "result %d", i)
	}
}

func TestDispatchUnknownToolIsRecovered(t *testing.T) {
	results := dispatch(t, "TOOL_CALL: unknown_fn(1, 2)\nTOOL_CALL: sum(1, 2)")
	require.Len(t, results, 2)

	assert.ErrorIs(t, results[0].Err, ErrUnknownTool)
	assert.Contains(t, results[0].Render(), "-> error:")

	// The failure does not abort the batch.
	require.NoError(t, results[1].Err)
	assert.Equal(t, "3", results[1].Value.String())
}

func TestDispatchArityMismatch(t *testing.T) {
	results := dispatch(t, "TOOL_CALL: square_root(4, 9)")
	require.Len(t, results, 1)

	var execErr *ExecutionError
	require.ErrorAs(t, results[0].Err, &execErr)
	assert.Equal(t, "square_root", execErr.Tool)
}

func TestDispatchTypeMismatch(t *testing.T) {
	results := dispatch(t, "TOOL_CALL: average(hello, world)")
	require.Len(t, results, 1)

	var execErr *ExecutionError
	require.ErrorAs(t, results[0].Err, &execErr)
	assert.Contains(t, execErr.Cause.Error(), "must be a number")
}

func TestDispatchToolDomainError(t *testing.T) {
	results := dispatch(t, "TOOL_CALL: square_root(-1)")
	require.Len(t, results, 1)

	var execErr *ExecutionError
	require.ErrorAs(t, results[0].Err, &execErr)
	assert.Contains(t, results[0].Render(), "error:")
}

func TestDispatchConvertsNumericTokensForTextTools(t *testing.T) {
	// A bare numeric token coerces to an int first; text tools must still
	// see the characters that were written.
	results := dispatch(t, "TOOL_CALL: count_digits(12345)")
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "5", results[0].Value.String())
}

func TestDispatchEmptyBatch(t *testing.T) {
	d := NewDispatcher(fullRegistry(t))
	results, err := d.Dispatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDispatchCancelledContext(t *testing.T) {
	d := NewDispatcher(fullRegistry(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Dispatch(ctx, Extract("TOOL_CALL: sum(1, 2)"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDispatchManyConcurrentCallsKeepOrder(t *testing.T) {
	const n = 32
	var text string
	want := make([]string, n)
	for i := 0; i < n; i++ {
		text += fmt.Sprintf("TOOL_CALL: sum(%d, %d)\n", i, i)
		want[i] = fmt.Sprintf("%d", 2*i)
	}

	results := dispatch(t, text)
	require.Len(t, results, n)
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, want[i], res.Value.String(), "result %d", i)
	}
}
