package translation

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

const redisCachePrefix = "trans:"

// DefaultRedisCacheTTL expires redis-cached translations after a day;
// redis handles eviction by TTL instead of an entry count.
const DefaultRedisCacheTTL = 24 * time.Hour

// RedisCache shares cached translations across instances. Cache errors
// are logged and treated as misses so redis trouble never breaks a
// translation request.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCache builds a redis-backed translation cache.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *logging.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultRedisCacheTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached translation for the key, if present.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, redisCachePrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("translation: redis cache read failed", "error", err)
		}
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return val, true
}

// Put stores a translation with the configured TTL.
func (c *RedisCache) Put(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, redisCachePrefix+key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("translation: redis cache write failed", "error", err)
	}
}

// Stats counts live cache keys. MaxSize is zero because redis bounds
// the cache by TTL, not entry count.
func (c *RedisCache) Stats(ctx context.Context) CacheStats {
	size := 0
	iter := c.client.Scan(ctx, 0, redisCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		size++
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("translation: redis cache scan failed", "error", err)
	}
	return CacheStats{
		Size:   size,
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// Reset deletes all cached translations and zeroes the counters.
func (c *RedisCache) Reset(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, redisCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("translation: redis cache delete failed", "error", err, "key", iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("translation: redis cache scan failed", "error", err)
	}
	c.hits.Store(0)
	c.misses.Store(0)
}
