// Package cache stores rendered export documents so repeated downloads of
// an unchanged report skip rendering.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache keeps export documents in Redis. Keys already carry a digest
// of the data the document was rendered from, so entries never need
// explicit invalidation; the TTL only bounds memory.
type ReportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// NewRedisClient parses a redis:// URL and checks the server answers
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Get returns the cached document. A missing key is a miss, not an error.
func (c *ReportCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a document; a zero ttl keeps it until evicted
func (c *ReportCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// NoopReportCache is used when no Redis URL is configured
type NoopReportCache struct{}

func (NoopReportCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (NoopReportCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
