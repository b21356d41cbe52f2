package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is not found in the cache
var ErrCacheMiss = errors.New("cache miss")

// KeyPrefix namespaces every key written by RedisCache
const KeyPrefix = "mediafeeds:"

const scanBatch = 500

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisClient creates a new Redis client
func NewRedisClient(ctx context.Context, addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not ping redis at %s: %w", addr, err)
	}

	return &RedisCache{client: client}, nil
}

// NewRedisCache wraps an existing client
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, KeyPrefix+key).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}

	return val, err
}

// Set stores a value in Redis with the specified TTL
// If ttl is 0, the value will not be cached
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	return c.client.Set(ctx, KeyPrefix+key, value, ttl).Err()
}

// Invalidate deletes all keys under KeyPrefix and returns how many were removed
func (c *RedisCache) Invalidate(ctx context.Context) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)

	for {
		keys, next, err := c.client.Scan(ctx, cursor, KeyPrefix+"*", scanBatch).Result()

		if err != nil {
			return deleted, fmt.Errorf("could not scan cached keys: %w", err)
		}

		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()

			if err != nil {
				return deleted, fmt.Errorf("could not delete cached keys: %w", err)
			}

			deleted += n
		}

		if next == 0 {
			return deleted, nil
		}

		cursor = next
	}
}

// Close releases the Redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}
