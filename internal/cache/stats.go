// In file: internal/cache/stats.go
package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ModelStats records per-model request outcomes in a Redis hash, one hash
// per model. It gives operators a cheap view of which models are serving
// queries and how they are behaving without a separate metrics stack.
type ModelStats struct {
	rdb *redis.Client
}

func NewModelStats(rdb *redis.Client) *ModelStats {
	return &ModelStats{rdb: rdb}
}

func (s *ModelStats) statsKey(modelID string) string {
	return fmt.Sprintf("modelstats:%s", modelID)
}

// RecordSuccess increments the success counter and stores the latency and
// token totals of the most recent successful session.
func (s *ModelStats) RecordSuccess(ctx context.Context, modelID string, latency time.Duration, totalTokens int) {
	key := s.statsKey(modelID)
	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, key, "total_successes", 1)
	pipe.HIncrBy(ctx, key, "total_tokens", int64(totalTokens))
	pipe.HSet(ctx, key, map[string]interface{}{
		"last_latency_ms": latency.Milliseconds(),
		"last_success_at": time.Now().UTC().Format(time.RFC3339),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("WARNING: Failed to record model stats for %s: %v", modelID, err)
	}
}

// RecordFailure increments the failure counter for the model.
func (s *ModelStats) RecordFailure(ctx context.Context, modelID string) {
	key := s.statsKey(modelID)
	if err := s.rdb.HIncrBy(ctx, key, "total_failures", 1).Err(); err != nil {
		log.Printf("WARNING: Failed to record model failure for %s: %v", modelID, err)
	}
}
