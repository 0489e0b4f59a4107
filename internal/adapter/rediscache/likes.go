// Package rediscache caches album like counts in Redis. The cache is an
// optimization only: every method degrades to a miss or a no-op when Redis
// is unavailable or not configured, and callers fall back to PostgreSQL.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/harmonia-music/harmonia-backend/internal/config"
)

// LikesCache stores album like counts with a TTL. A nil *LikesCache is valid
// and behaves as an always-miss cache.
type LikesCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection. It returns (nil, nil)
// when no address is configured, which disables caching.
func New(ctx context.Context, cfg config.RedisConfig) (*LikesCache, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &LikesCache{client: client, ttl: cfg.LikesTTL}, nil
}

func likesKey(albumID uuid.UUID) string {
	return "album:likes:" + albumID.String()
}

// Get returns the cached like count for an album. The second return value
// reports whether the value was present.
func (c *LikesCache) Get(ctx context.Context, albumID uuid.UUID) (int, bool, error) {
	if c == nil {
		return 0, false, nil
	}

	val, err := c.client.Get(ctx, likesKey(albumID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get cached likes: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached likes: %w", err)
	}

	return count, true, nil
}

// Set stores the like count for an album with the configured TTL.
func (c *LikesCache) Set(ctx context.Context, albumID uuid.UUID, count int) error {
	if c == nil {
		return nil
	}

	if err := c.client.Set(ctx, likesKey(albumID), count, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache likes: %w", err)
	}

	return nil
}

// Invalidate drops the cached count for an album. Called after every like
// or unlike so stale counts never outlive a mutation.
func (c *LikesCache) Invalidate(ctx context.Context, albumID uuid.UUID) error {
	if c == nil {
		return nil
	}

	if err := c.client.Del(ctx, likesKey(albumID)).Err(); err != nil {
		return fmt.Errorf("invalidate cached likes: %w", err)
	}

	return nil
}

// Close releases the underlying Redis connection.
func (c *LikesCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
