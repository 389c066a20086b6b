package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pennyflow/backend/internal/application/adapter"
)

// redisSummaryCache implements the adapter.SummaryCache interface on Redis.
type redisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &redisSummaryCache{
		client: client,
	}
}

// Get retrieves the cached payload for the key, (nil, nil) on a miss.
func (c *redisSummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the payload under the key with the given TTL.
func (c *redisSummaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}
