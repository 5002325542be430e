package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/config"
)

const cacheKeyPrefix = "catalog:"

// Cache is an optional Redis-backed response cache shared by every
// Service instance pointed at it. Values are stored as JSON with a fixed
// TTL; cache failures are never surfaced to callers, reads just fall
// through to the upstream.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache connects to Redis per the cache config. Returns (nil, nil)
// when no Redis URL is set, which keeps the no-shared-cache default.
func NewCache(cfg config.CacheConfig, logger *zap.Logger) (*Cache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Catalog cache enabled", zap.Duration("ttl", cfg.TTL))
	return &Cache{client: client, ttl: cfg.TTL, logger: logger}, nil
}

// Get loads a cached value into dest. The bool reports a hit.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached value: %w", err)
	}
	return true, nil
}

// Set stores a value under the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for cache: %w", err)
	}
	return c.client.Set(ctx, cacheKeyPrefix+key, raw, c.ttl).Err()
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
