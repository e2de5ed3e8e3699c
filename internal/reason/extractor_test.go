// In file: internal/reason/extractor_test.go
package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSingleCall(t *testing.T) {
	text := "Let me compute that.\nTOOL_CALL: average(18, 50)\nThen I'll continue."

	requests := Extract(text)
	require.Len(t, requests, 1)
	assert.Equal(t, "average", requests[0].Name)
	assert.Equal(t, "18, 50", requests[0].RawArgs)
	assert.Equal(t, []string{"18", "50"}, requests[0].Args)
}

func TestExtractPreservesLeftToRightOrder(t *testing.T) {
	text := "First TOOL_CALL: factorial(15) and later TOOL_CALL: factorial(10), done."

	requests := Extract(text)
	require.Len(t, requests, 2)
	assert.Equal(t, []string{"15"}, requests[0].Args)
	assert.Equal(t, []string{"10"}, requests[1].Args)
}

func TestExtractPreservesDuplicates(t *testing.T) {
	text := "TOOL_CALL: sum(1, 2)\nTOOL_CALL: sum(1, 2)"

	requests := Extract(text)
	require.Len(t, requests, 2)
	assert.Equal(t, requests[0], requests[1])
}

func TestExtractZeroArgumentCall(t *testing.T) {
	requests := Extract("TOOL_CALL: refresh()")
	require.Len(t, requests, 1)
	assert.Equal(t, "refresh", requests[0].Name)
	assert.Empty(t, requests[0].Args)
}

func TestExtractTrimsArgumentWhitespace(t *testing.T) {
	requests := Extract("TOOL_CALL: power(  2 ,   10 )")
	require.Len(t, requests, 1)
	assert.Equal(t, []string{"2", "10"}, requests[0].Args)
}

func TestExtractSkipsUnbalancedParentheses(t *testing.T) {
	// The malformed first fragment is skipped silently; the well-formed
	// one later in the text is still extracted.
	text := "TOOL_CALL: broken(1, (2\nTOOL_CALL: count_vowels(hello)"

	requests := Extract(text)
	require.Len(t, requests, 1)
	assert.Equal(t, "count_vowels", requests[0].Name)
}

func TestExtractIgnoresSurroundingText(t *testing.T) {
	text := "average(1, 2) looks like a call but has no directive prefix.\n" +
		"Nothing here should match."
	assert.Empty(t, Extract(text))
}

func TestExtractNoMatches(t *testing.T) {
	assert.Nil(t, Extract("The answer is 42."))
	assert.Nil(t, Extract(""))
}

func TestExtractIsRestartable(t *testing.T) {
	text := "TOOL_CALL: sum(1, 2) then TOOL_CALL: product(3, 4)"
	first := Extract(text)
	second := Extract(text)
	assert.Equal(t, first, second)
}

func TestExtractAllowsFlexibleSpacingAfterDirective(t *testing.T) {
	requests := Extract("TOOL_CALL:count_vowels(hi) and TOOL_CALL:   sum(1, 2)")
	require.Len(t, requests, 2)
	assert.Equal(t, "count_vowels", requests[0].Name)
	assert.Equal(t, "sum", requests[1].Name)
}
