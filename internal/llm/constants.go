// In file: internal/llm/constants.go
package llm

import "time"

// Shared across all provider clients to keep retry behavior uniform.
const (
	defaultTimeout    = 120 * time.Second
	maxRetries        = 3
	initialRetryDelay = 2 * time.Second
)
