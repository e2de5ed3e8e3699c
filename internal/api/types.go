// In file: internal/api/types.go

// Package api defines the request/response shapes of the HTTP surface and
// the token-usage accounting shared across the llm clients.
package api

// Usage holds token accounting for one or more model calls.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another usage record, used by the session to total token
// spend across rounds.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// ReasonRequest is the body of POST /api/v1/reason.
type ReasonRequest struct {
	// Query is the natural-language question to answer.
	Query string `json:"query" binding:"required"`
	// Model optionally overrides the configured default model.
	Model string `json:"model,omitempty"`
}

// ToolUse reports one tool invocation made while answering a query.
type ToolUse struct {
	Tool      string `json:"tool"`
	Arguments string `json:"arguments"`
	Result    string `json:"result"`
	Failed    bool   `json:"failed,omitempty"`
}

// ReasonResponse is the result of one reasoning session.
type ReasonResponse struct {
	Answer      string    `json:"answer"`
	ModelUsed   string    `json:"model_used"`
	Rounds      int       `json:"rounds"`
	ToolsUsed   []ToolUse `json:"tools_used,omitempty"`
	Usage       Usage     `json:"usage"`
	LatencyMS   int64     `json:"latency_ms"`
	CacheStatus string    `json:"cache_status,omitempty"`
}
