package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/backoffice/admin-console/internal/api/metrics"
)

// CountCache caches dashboard record counts in Redis with a short TTL. The
// dashboard polls the count endpoints; the cache keeps those polls off the
// document store. Entries are invalidated whenever a record is created or
// deleted, so the TTL only bounds staleness across processes.
type CountCache struct {
	client *redis.Client
}

// NewCountCache creates a CountCache wrapping the given Redis client.
func NewCountCache(client *redis.Client) *CountCache {
	return &CountCache{client: client}
}

// Get returns the cached count for key. ok is false on a cache miss.
func (c *CountCache) Get(ctx context.Context, key string) (int64, bool, error) {
	n, err := c.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CountCacheTotal.WithLabelValues(resourceFromKey(key), "miss").Inc()
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("count cache get: %w", err)
	}
	metrics.CountCacheTotal.WithLabelValues(resourceFromKey(key), "hit").Inc()
	return n, true, nil
}

// Set stores the count for key, expiring after ttl.
func (c *CountCache) Set(ctx context.Context, key string, n int64, ttl time.Duration) error {
	return c.client.Set(ctx, key, n, ttl).Err()
}

// Invalidate drops the cached count for key.
func (c *CountCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// resourceFromKey extracts the resource label from a "count:<resource>" key.
func resourceFromKey(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}
