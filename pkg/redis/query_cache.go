package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// QueryCache memoizes final translated queries. Cache failures degrade
// to a regeneration, never to a request failure.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewQueryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *QueryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Key derives a stable cache key from the schema binding and the
// question. The schema id pins the key to one registered vocabulary.
func (c *QueryCache) Key(language, schemaID, question string) string {
	sum := sha256.Sum256([]byte(language + "|" + schemaID + "|" + question))
	return "nl2query:" + hex.EncodeToString(sum[:])
}

func (c *QueryCache) Get(ctx context.Context, key string) (string, bool) {
	result, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warn("query cache read failed", zap.Error(err))
		return "", false
	}
	return result, true
}

func (c *QueryCache) Set(ctx context.Context, key, query string) {
	if err := c.client.Set(ctx, key, query, c.ttl).Err(); err != nil {
		c.logger.Warn("query cache write failed", zap.Error(err))
	}
}
