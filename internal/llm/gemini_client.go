// In file: internal/llm/gemini_client.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
)

// GeminiClient talks to Google's Gemini models through the official SDK.
type GeminiClient struct {
	model *genai.GenerativeModel
}

var _ LLMClient = (*GeminiClient)(nil)

// NewGeminiClient creates a client bound to one Gemini model. Unlike the
// HTTP clients, the SDK fixes the model at construction time.
func NewGeminiClient(apiKey, modelID string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(modelID)}, nil
}

// Generate performs a blocking request to the Gemini API.
func (c *GeminiClient) Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to send")
	}
	c.configureModel(config)

	chat := c.model.StartChat()
	chat.History = toGeminiContentHistory(messages)

	lastMessage := messages[len(messages)-1]
	resp, err := chat.SendMessage(ctx, genai.Text(lastMessage.Content))
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return parseGeminiResponse(ctx, c.model, resp)
}

// configureModel applies generation settings through the SDK's setters.
func (c *GeminiClient) configureModel(config *GenerationConfig) {
	if config.Temperature != nil {
		c.model.SetTemperature(*config.Temperature)
	}
	if config.TopP != nil {
		c.model.SetTopP(*config.TopP)
	}
	if config.MaxTokens > 0 {
		c.model.SetMaxOutputTokens(int32(config.MaxTokens))
	} else {
		c.model.SetMaxOutputTokens(4096)
	}
}

// toGeminiContentHistory converts the transcript to the SDK's format.
// The last message is the new prompt, so it is excluded from history.
func toGeminiContentHistory(messages []Message) []*genai.Content {
	var history []*genai.Content
	for _, msg := range messages[:len(messages)-1] {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return history
}

func parseGeminiResponse(ctx context.Context, model *genai.GenerativeModel, resp *genai.GenerateContentResponse) (*GenerationResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("no content returned from Gemini")
	}

	var contentBuilder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			contentBuilder.WriteString(string(txt))
		}
	}

	result := &GenerationResult{Content: strings.TrimSpace(contentBuilder.String())}

	if resp.UsageMetadata != nil {
		result.Usage = api.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	// Some responses omit completion tokens from the metadata; count them
	// manually so usage accounting stays meaningful.
	if result.Usage.CompletionTokens == 0 && result.Content != "" {
		countResp, err := model.CountTokens(ctx, genai.Text(result.Content))
		if err != nil {
			log.Printf("Warning: failed to count completion tokens: %v", err)
		} else {
			result.Usage.CompletionTokens = int(countResp.TotalTokens)
			result.Usage.TotalTokens = result.Usage.PromptTokens + result.Usage.CompletionTokens
		}
	}

	return result, nil
}
