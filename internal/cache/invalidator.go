// Package cache clears stale storefront cache entries after a seed run.
// Seeding rewrites catalog and promotion data underneath the cache, so any
// key derived from it must be dropped.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Prefixes of cache keys derived from seeded data.
var seededPrefixes = []string{
	"catalog:",
	"category:",
	"discount:",
	"translation:",
	"settings:",
}

const scanBatchSize = 200

// Invalidator drops cache keys under the seeded prefixes. A nil
// Invalidator is a valid no-op, used when no Redis host is configured.
type Invalidator struct {
	client *redis.Client
	logger *slog.Logger
}

// NewInvalidator creates a cache invalidator.
func NewInvalidator(client *redis.Client, logger *slog.Logger) *Invalidator {
	return &Invalidator{client: client, logger: logger}
}

// InvalidateSeeded removes every key under the seeded prefixes via
// SCAN + DEL, returning the number of keys dropped. SCAN keeps the
// operation incremental so a large cache is never blocked.
func (i *Invalidator) InvalidateSeeded(ctx context.Context) (int, error) {
	if i == nil {
		return 0, nil
	}

	dropped := 0
	for _, prefix := range seededPrefixes {
		n, err := i.invalidatePrefix(ctx, prefix)
		dropped += n
		if err != nil {
			return dropped, err
		}
	}

	i.logger.InfoContext(ctx, "cache invalidated", slog.Int("keys", dropped))
	return dropped, nil
}

func (i *Invalidator) invalidatePrefix(ctx context.Context, prefix string) (int, error) {
	dropped := 0
	var cursor uint64
	for {
		keys, next, err := i.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return dropped, fmt.Errorf("scan cache prefix %q: %w", prefix, err)
		}
		if len(keys) > 0 {
			if err := i.client.Del(ctx, keys...).Err(); err != nil {
				return dropped, fmt.Errorf("delete cache keys under %q: %w", prefix, err)
			}
			dropped += len(keys)
		}
		cursor = next
		if cursor == 0 {
			return dropped, nil
		}
	}
}

// Close releases the Redis connection.
func (i *Invalidator) Close() error {
	if i == nil {
		return nil
	}
	return i.client.Close()
}
