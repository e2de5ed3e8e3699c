// In file: internal/cache/answers.go

// Package cache holds the optional Redis-backed layers around the
// reasoning loop: a final-answer cache and per-model usage stats. Both are
// best-effort; a missing or unreachable Redis never fails a query.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dileep-u-k/tool-reasoner/internal/version"
)

const answerCachePrefix = "answercache"

// AnswerCache stores finished answers keyed by a versioned hash of the
// query, so repeated queries skip the model entirely until a component
// version bump invalidates them.
type AnswerCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnswerCache(rdb *redis.Client, ttl time.Duration) *AnswerCache {
	return &AnswerCache{rdb: rdb, ttl: ttl}
}

// Check looks up a cached payload for the query. A Redis error is treated
// as a miss.
func (c *AnswerCache) Check(ctx context.Context, query string) (string, bool) {
	key := version.GenerateVersionedCacheKey(answerCachePrefix, query)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a payload for the query. Failures are logged, not returned;
// caching is never worth failing a served answer over.
func (c *AnswerCache) Set(ctx context.Context, query, payload string) {
	key := version.GenerateVersionedCacheKey(answerCachePrefix, query)
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("WARNING: Failed to cache answer: %v", err)
	}
}
