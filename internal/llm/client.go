// In file: internal/llm/client.go

// Package llm contains the model-service boundary: a provider-agnostic
// client interface and one implementation per supported provider. The
// contract is deliberately narrow (one opaque text prompt in, one opaque
// text completion out) because the reasoning loop's tool protocol lives
// entirely in the prompt text, not in any provider's function-calling API.
package llm

import (
	"context"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
)

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single exchange in a conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerationConfig holds the parameters controlling a generation request.
type GenerationConfig struct {
	// Model is the provider-specific model identifier (e.g. "gpt-4o").
	Model string
	// Temperature controls randomness. A pointer distinguishes an explicit
	// 0.0 from an unset value.
	Temperature *float32
	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int
	// TopP is nucleus sampling, an alternative to temperature.
	TopP *float32
}

// GenerationResult is the complete output of one blocking model call.
type GenerationResult struct {
	Content string
	Usage   api.Usage
}

// LLMClient is the universal interface every provider client implements.
// Generate is a blocking request/response call with a bounded timeout;
// transient failures are retried internally with backoff before an error
// is returned.
type LLMClient interface {
	Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error)
}
