// In file: internal/llm/mistral_client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
)

const mistralAPIURL = "https://api.mistral.ai/v1/chat/completions"

// The Mistral chat API mirrors OpenAI's shape closely, so the request and
// response structs look similar but are kept separate; the two APIs drift
// independently.
type mistralRequest struct {
	Model       string           `json:"model"`
	Messages    []mistralMessage `json:"messages"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
	Temperature *float32         `json:"temperature,omitempty"`
	TopP        *float32         `json:"top_p,omitempty"`
}

type mistralMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type mistralResponse struct {
	Choices []struct {
		Message mistralMessage `json:"message"`
	} `json:"choices"`
	Usage api.Usage `json:"usage"`
}

// MistralClient talks to Mistral AI models.
type MistralClient struct {
	apiKey     string
	httpClient *http.Client
}

var _ LLMClient = (*MistralClient)(nil)

func NewMistralClient(apiKey string) (*MistralClient, error) {
	if apiKey == "" {
		return nil, errors.New("Mistral API key cannot be empty")
	}
	return &MistralClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Generate performs a blocking request to the Mistral API.
func (c *MistralClient) Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error) {
	payload, err := c.buildRequestPayload(messages, config)
	if err != nil {
		return nil, fmt.Errorf("failed to build mistral request payload: %w", err)
	}

	respBody, err := c.doRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	return parseMistralResponse(respBody)
}

func (c *MistralClient) buildRequestPayload(messages []Message, config *GenerationConfig) (*bytes.Buffer, error) {
	msgs := make([]mistralMessage, 0, len(messages))
	for _, msg := range messages {
		msgs = append(msgs, mistralMessage{Role: string(msg.Role), Content: msg.Content})
	}

	req := mistralRequest{
		Model:       config.Model,
		Messages:    msgs,
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

func (c *MistralClient) doRequest(ctx context.Context, payload *bytes.Buffer) ([]byte, error) {
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

		lastErr = fmt.Errorf("mistral API error (attempt %d/%d): status %d, body: %s", i+1, maxRetries, resp.StatusCode, string(body))

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

func (c *MistralClient) createRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mistralAPIURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

func parseMistralResponse(body []byte) (*GenerationResult, error) {
	var mistralResp mistralResponse
	if err := json.Unmarshal(body, &mistralResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mistral response: %w", err)
	}
	if len(mistralResp.Choices) == 0 {
		return nil, errors.New("no choices returned from Mistral")
	}
	return &GenerationResult{
		Content: mistralResp.Choices[0].Message.Content,
		Usage:   mistralResp.Usage,
	}, nil
}
