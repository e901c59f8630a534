package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const intentTTL = 24 * time.Hour

// IntentCache replays payment-intent client secrets by idempotency key,
// backed by Redis. Key format: intent:<idempotency_key>
type IntentCache struct {
	client *redis.Client
}

// NewIntentCache creates an IntentCache wrapping the given Redis client.
func NewIntentCache(client *redis.Client) *IntentCache {
	return &IntentCache{client: client}
}

// Get returns the cached client secret for a key, if one exists.
func (c *IntentCache) Get(ctx context.Context, key string) (string, bool, error) {
	secret, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("intent cache get: %w", err)
	}
	return secret, true, nil
}

// Put records an issued client secret (expires after intentTTL).
func (c *IntentCache) Put(ctx context.Context, key, secret string) error {
	return c.client.Set(ctx, c.key(key), secret, intentTTL).Err()
}

func (c *IntentCache) key(idempotencyKey string) string {
	return fmt.Sprintf("intent:%s", idempotencyKey)
}
