package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/logger"
)

// DashboardStatsCache holds computed dashboard stats keyed by business date.
// Stats depend on the date, so a key never outlives the day it was built for.
//
// Entries are also keyed by a generation that Invalidate bumps. A reader
// takes the generation before loading clients and writes under it, so stats
// computed from a snapshot that predates a mutation land on a key no later
// reader looks up.
type DashboardStatsCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, generation int64, dateKey string, months int) (*membership.DashboardStats, error)
	Set(ctx context.Context, generation int64, dateKey string, months int, stats *membership.DashboardStats) error
	Invalidate(ctx context.Context) error
}

const (
	dashboardKeyPrefix     = "gymdesk:dashboard:stats:"
	dashboardGenerationKey = "gymdesk:dashboard:generation"
	invalidateScanSize     = 100
)

// RedisDashboardStatsCache stores stats as JSON strings.
type RedisDashboardStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisDashboardStatsCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisDashboardStatsCache {
	return &RedisDashboardStatsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Format: gymdesk:dashboard:stats:{generation}:{date}:{months}
func (c *RedisDashboardStatsCache) key(generation int64, dateKey string, months int) string {
	return fmt.Sprintf("%s%d:%s:%d", dashboardKeyPrefix, generation, dateKey, months)
}

// Generation returns the current cache generation, zero before the first
// invalidation.
func (c *RedisDashboardStatsCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, dashboardGenerationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read dashboard stats generation: %w", err)
	}
	return gen, nil
}

// Get returns nil, nil on a cache miss.
func (c *RedisDashboardStatsCache) Get(ctx context.Context, generation int64, dateKey string, months int) (*membership.DashboardStats, error) {
	key := c.key(generation, dateKey, months)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard stats from cache: %w", err)
	}

	var stats membership.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// A corrupt entry is dropped and treated as a miss.
		c.logger.Warnw("discarding unreadable dashboard stats cache entry", "date", dateKey, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return nil, nil
	}
	return &stats, nil
}

// Set stores stats under generation. Writes for a superseded generation are
// dropped.
func (c *RedisDashboardStatsCache) Set(ctx context.Context, generation int64, dateKey string, months int, stats *membership.DashboardStats) error {
	if stats == nil {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard stats: %w", err)
	}
	current, err := c.Generation(ctx)
	if err != nil {
		return err
	}
	if current != generation {
		c.logger.Debugw("dropping stale dashboard stats", "generation", generation, "current", current)
		return nil
	}
	if err := c.client.Set(ctx, c.key(generation, dateKey, months), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache dashboard stats: %w", err)
	}
	return nil
}

// Invalidate moves to a new generation and removes every cached variant.
func (c *RedisDashboardStatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, dashboardGenerationKey).Err(); err != nil {
		return fmt.Errorf("failed to bump dashboard stats generation: %w", err)
	}

	var cursor uint64
	removed := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, dashboardKeyPrefix+"*", invalidateScanSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan dashboard stats keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate dashboard stats: %w", err)
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.logger.Debugw("dashboard stats cache invalidated", "keys", removed)
	return nil
}
