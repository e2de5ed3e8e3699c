// In file: internal/llm/openai_client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
)

const openAIAPIURL = "https://api.openai.com/v1/chat/completions"

// openAIRequest is the payload for an OpenAI chat completion call.
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature *float32        `json:"temperature,omitempty"`
	TopP        *float32        `json:"top_p,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIResponse is the structure of a successful response from the API.
type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Usage api.Usage `json:"usage"`
}

// OpenAIClient talks to OpenAI models like GPT-4o.
type OpenAIClient struct {
	apiKey     string
	httpClient *http.Client
}

var _ LLMClient = (*OpenAIClient)(nil)

// NewOpenAIClient creates a configured client for the OpenAI API. The model
// is specified per-request via GenerationConfig, not on the client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key cannot be empty")
	}
	return &OpenAIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Generate performs a blocking request to the OpenAI API.
func (c *OpenAIClient) Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error) {
	payload, err := c.buildRequestPayload(messages, config)
	if err != nil {
		return nil, fmt.Errorf("failed to build openai request payload: %w", err)
	}

	respBody, err := c.doRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	return parseOpenAIResponse(respBody)
}

func (c *OpenAIClient) buildRequestPayload(messages []Message, config *GenerationConfig) (*bytes.Buffer, error) {
	req := openAIRequest{
		Model:    config.Model,
		Messages: toOpenAIMessages(messages),
	}
	if config.MaxTokens > 0 {
		req.MaxTokens = config.MaxTokens
	}
	req.Temperature = config.Temperature
	req.TopP = config.TopP

	payloadBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}
	return bytes.NewBuffer(payloadBytes), nil
}

// doRequest performs the HTTP call with bounded retries and exponential
// backoff. Client errors (4xx) are not retried.
func (c *OpenAIClient) doRequest(ctx context.Context, payload *bytes.Buffer) ([]byte, error) {
	var lastErr error
	delay := initialRetryDelay

	for i := 0; i < maxRetries; i++ {
		// A bytes.Reader lets the request body be re-read on retry.
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

		lastErr = fmt.Errorf("openai API error (attempt %d/%d): status %d, body: %s", i+1, maxRetries, resp.StatusCode, string(body))

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

func (c *OpenAIClient) createRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIAPIURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

// sleepCtx waits for the backoff delay but returns early if the context is
// cancelled, so a cancelled session does not sit out the full backoff.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func toOpenAIMessages(messages []Message) []openAIMessage {
	out := make([]openAIMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, openAIMessage{Role: string(msg.Role), Content: msg.Content})
	}
	return out
}

func parseOpenAIResponse(body []byte) (*GenerationResult, error) {
	var openAIResp openAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal openai response: %w", err)
	}
	if len(openAIResp.Choices) == 0 {
		return nil, errors.New("no choices returned from OpenAI")
	}
	return &GenerationResult{
		Content: openAIResp.Choices[0].Message.Content,
		Usage:   openAIResp.Usage,
	}, nil
}
