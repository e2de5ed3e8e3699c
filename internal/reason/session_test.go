// In file: internal/reason/session_test.go
package reason

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/llm"
)

// scriptedClient plays back a fixed sequence of model responses and records
// every prompt it was sent. When the script runs out the last response is
// repeated, which lets the iteration-cap test emit tool calls forever.
type scriptedClient struct {
	responses []string
	err       error
	prompts   []string
	calls     int
}

func (c *scriptedClient) Generate(_ context.Context, messages []llm.Message, _ *llm.GenerationConfig) (*llm.GenerationResult, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	c.prompts = append(c.prompts, messages[len(messages)-1].Content)

	i := c.calls - 1
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	return &llm.GenerationResult{
		Content: c.responses[i],
		Usage:   api.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

func newSession(t *testing.T, client llm.LLMClient) *Session {
	t.Helper()
	return NewSession(client, fullRegistry(t), Config{Model: "gpt-4o"})
}

func TestSessionSingleToolRound(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"I need the average of the two ages.\nTOOL_CALL: average(18, 50)",
		"The average age is 34, and its square root is about 5.83.\nThe answer is 34.",
	}}

	outcome, err := newSession(t, client).Run(context.Background(), "average of 18 and 50?")
	require.NoError(t, err)

	assert.Equal(t, "The answer is 34.", outcome.Answer)
	assert.Equal(t, 1, outcome.Rounds)
	assert.Equal(t, 2, client.calls)

	require.Len(t, outcome.ToolsUsed, 1)
	assert.Equal(t, api.ToolUse{Tool: "average", Arguments: "18, 50", Result: "34"}, outcome.ToolsUsed[0])

	// The follow-up prompt must carry the rendered result.
	require.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[1], "average(18, 50) = 34")
}

func TestSessionInitialPromptListsCatalog(t *testing.T) {
	client := &scriptedClient{responses: []string{"The answer is 42."}}

	_, err := newSession(t, client).Run(context.Background(), "what is 6 times 7?")
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Available Tools:")
	assert.Contains(t, client.prompts[0], "- average:")
	assert.Contains(t, client.prompts[0], "- count_vowels:")
	assert.Contains(t, client.prompts[0], "what is 6 times 7?")
}

func TestSessionStringTool(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Counting the vowels.\nTOOL_CALL: count_vowels(Multimodality)",
		"\"Multimodality\" contains 6 vowels.",
	}}

	outcome, err := newSession(t, client).Run(context.Background(), `how many vowels in "Multimodality"?`)
	require.NoError(t, err)

	assert.Equal(t, `"Multimodality" contains 6 vowels.`, outcome.Answer)
	require.Len(t, outcome.ToolsUsed, 1)
	assert.Equal(t, "6", outcome.ToolsUsed[0].Result)
}

func TestSessionMultipleCallsInOneRound(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Two factorials are needed.\nTOOL_CALL: factorial(15)\nTOOL_CALL: factorial(10)",
		"15! is 1307674368000 and 10! is 3628800.",
	}}

	outcome, err := newSession(t, client).Run(context.Background(), "compute 15! and 10!")
	require.NoError(t, err)

	require.Len(t, outcome.ToolsUsed, 2)
	assert.Equal(t, "1307674368000", outcome.ToolsUsed[0].Result)
	assert.Equal(t, "3628800", outcome.ToolsUsed[1].Result)

	assert.Contains(t, client.prompts[1], "factorial(15) = 1307674368000")
	assert.Contains(t, client.prompts[1], "factorial(10) = 3628800")
}

func TestSessionRecoversFailedCall(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Trying a tool that does not exist.\nTOOL_CALL: unknown_fn(1, 2)\nTOOL_CALL: sum(1, 2)",
		"The sum is 3; the other tool was unavailable.",
	}}

	outcome, err := newSession(t, client).Run(context.Background(), "add 1 and 2")
	require.NoError(t, err)

	require.Len(t, outcome.ToolsUsed, 2)
	assert.True(t, outcome.ToolsUsed[0].Failed)
	assert.Contains(t, outcome.ToolsUsed[0].Result, "unknown tool")
	assert.False(t, outcome.ToolsUsed[1].Failed)
	assert.Equal(t, "3", outcome.ToolsUsed[1].Result)

	// The failure is surfaced to the model, not swallowed.
	assert.Contains(t, client.prompts[1], "unknown_fn(1, 2) -> error:")
}

func TestSessionNoToolsNeeded(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"This needs no tools.\nParis is the capital of France.",
	}}

	s := newSession(t, client)
	outcome, err := s.Run(context.Background(), "capital of France?")
	require.NoError(t, err)

	assert.Equal(t, "Paris is the capital of France.", outcome.Answer)
	assert.Equal(t, 0, outcome.Rounds)
	assert.Empty(t, outcome.ToolsUsed)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, StateDone, s.State())
}

func TestSessionRoundCapTerminatesLoop(t *testing.T) {
	// The model keeps asking for tools on every response; the cap must cut
	// the loop off and answer from the latest text.
	client := &scriptedClient{responses: []string{
		"TOOL_CALL: sum(1, 2)\nkeep going",
	}}

	s := newSession(t, client)
	outcome, err := s.Run(context.Background(), "loop forever")
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxToolRounds, outcome.Rounds)
	assert.Equal(t, DefaultMaxToolRounds+1, client.calls)
	assert.Equal(t, "keep going", outcome.Answer)
	assert.Equal(t, StateDone, s.State())
}

func TestSessionConfigurableRoundCap(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"TOOL_CALL: sum(1, 2)\nstill going",
	}}

	s := NewSession(client, fullRegistry(t), Config{Model: "gpt-4o", MaxToolRounds: 1})
	outcome, err := s.Run(context.Background(), "loop forever")
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Rounds)
	assert.Equal(t, 2, client.calls)
}

func TestSessionModelFailureAborts(t *testing.T) {
	client := &scriptedClient{err: errors.New("service unavailable")}

	s := newSession(t, client)
	outcome, err := s.Run(context.Background(), "anything")
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.Equal(t, StateError, s.State())
}

func TestSessionAccumulatesUsage(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"TOOL_CALL: sum(1, 2)",
		"The sum is 3.",
	}}

	outcome, err := newSession(t, client).Run(context.Background(), "add 1 and 2")
	require.NoError(t, err)

	assert.Equal(t, api.Usage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30}, outcome.Usage)
	// user, assistant, user, assistant
	require.Len(t, outcome.Transcript, 4)
	assert.Equal(t, llm.RoleUser, outcome.Transcript[0].Role)
	assert.Equal(t, llm.RoleAssistant, outcome.Transcript[3].Role)
}

func TestFinalAnswerSelection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"last line wins", "reasoning here\nThe answer is 34.", "The answer is 34."},
		{"trailing blank lines skipped", "The answer is 6.\n\n\n", "The answer is 6."},
		{"tool call lines skipped", "The answer is 3.\nTOOL_CALL: sum(1, 2)", "The answer is 3."},
		{"whole text fallback", "\nTOOL_CALL: sum(1, 2)\n", "TOOL_CALL: sum(1, 2)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, finalAnswer(tc.text))
		})
	}
}
