// In file: internal/llm/anthropic_client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
)

const (
	anthropicAPIURL     = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion = "2023-06-01"
	// Anthropic requires max_tokens; used when the config leaves it unset.
	anthropicDefaultMaxTokens = 1024
)

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature *float32           `json:"temperature,omitempty"`
	TopP        *float32           `json:"top_p,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// AnthropicClient talks to Anthropic's Claude models.
type AnthropicClient struct {
	apiKey     string
	httpClient *http.Client
}

var _ LLMClient = (*AnthropicClient)(nil)

func NewAnthropicClient(apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key cannot be empty")
	}
	return &AnthropicClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Generate performs a blocking request to the Anthropic messages API.
func (c *AnthropicClient) Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error) {
	payload, err := c.buildRequestPayload(messages, config)
	if err != nil {
		return nil, fmt.Errorf("failed to build anthropic request payload: %w", err)
	}

	respBody, err := c.doRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	return parseAnthropicResponse(respBody)
}

func (c *AnthropicClient) buildRequestPayload(messages []Message, config *GenerationConfig) (*bytes.Buffer, error) {
	system, anthropicMsgs := toAnthropicMessages(messages)

	req := anthropicRequest{
		Model:       config.Model,
		System:      system,
		Messages:    anthropicMsgs,
		MaxTokens:   anthropicDefaultMaxTokens,
		Temperature: config.Temperature,
		TopP:        config.TopP,
	}
	if config.MaxTokens > 0 {
		req.MaxTokens = config.MaxTokens
	}

	payloadBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}
	return bytes.NewBuffer(payloadBytes), nil
}

// toAnthropicMessages separates system messages (a top-level field in the
// Anthropic API) from the user/assistant turns.
func toAnthropicMessages(messages []Message) (string, []anthropicMessage) {
	var system strings.Builder
	out := make([]anthropicMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			if system.Len() > 0 {
				system.WriteByte('\n')
			}
			system.WriteString(msg.Content)
			continue
		}
		out = append(out, anthropicMessage{Role: string(msg.Role), Content: msg.Content})
	}
	return system.String(), out
}

func (c *AnthropicClient) doRequest(ctx context.Context, payload *bytes.Buffer) ([]byte, error) {
	var lastErr error
	delay := initialRetryDelay

	for i := 0; i < maxRetries; i++ {
		req, err := c.createRequest(ctx, bytes.NewReader(payload.Bytes()))
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", i+1, maxRetries, err)
			if waitErr := sleepCtx(ctx, delay); waitErr != nil {
				return nil, waitErr
			}
			delay *= 2
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		lastErr = fmt.Errorf("anthropic API error (attempt %d/%d): status %d, body: %s", i+1, maxRetries, resp.StatusCode, string(body))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, lastErr
		}

		if waitErr := sleepCtx(ctx, delay); waitErr != nil {
			return nil, waitErr
		}
		delay *= 2
	}
	return nil, lastErr
}

func (c *AnthropicClient) createRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)
	return req, nil
}

func parseAnthropicResponse(body []byte) (*GenerationResult, error) {
	var anthropicResp anthropicResponse
	if err := json.Unmarshal(body, &anthropicResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal anthropic response: %w", err)
	}
	if len(anthropicResp.Content) == 0 {
		return nil, errors.New("no content returned from Anthropic")
	}

	var content strings.Builder
	for _, block := range anthropicResp.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &GenerationResult{
		Content: content.String(),
		Usage: api.Usage{
			PromptTokens:     anthropicResp.Usage.InputTokens,
			CompletionTokens: anthropicResp.Usage.OutputTokens,
			TotalTokens:      anthropicResp.Usage.InputTokens + anthropicResp.Usage.OutputTokens,
		},
	}, nil
}
