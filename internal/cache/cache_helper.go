package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheHelper provides common caching operations for repositories
type CacheHelper struct {
	client *redis.Client
	prefix string
}

// NewCacheHelper creates a new cache helper instance
func NewCacheHelper(client *redis.Client, prefix string) *CacheHelper {
	return &CacheHelper{
		client: client,
		prefix: prefix,
	}
}

// CacheConfig defines cache configuration for different data types.
// ListTTL bounds how long a list entry may lag behind catalogue edits made outside this service.
type CacheConfig struct {
	TTL     time.Duration
	ListTTL time.Duration
	Prefix  string
}

var (
	// Tools and scales are read-mostly catalogue data; this service never writes them
	// and never invalidates them, so entries expire by TTL only
	ToolCacheConfig = CacheConfig{
		TTL:     5 * time.Minute,
		ListTTL: time.Minute,
		Prefix:  "tool:",
	}

	ScaleCacheConfig = CacheConfig{
		TTL:     10 * time.Minute,
		ListTTL: time.Minute,
		Prefix:  "scale:",
	}
)

// Cache errors
var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheNotFound     = errors.New("cache not found")
)

// GetCacheKey generates a cache key with prefix
func (c *CacheHelper) GetCacheKey(key string) string {
	return fmt.Sprintf("%s%s", c.prefix, key)
}

// Get retrieves and unmarshals data from cache
func (c *CacheHelper) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := c.client.Get(ctx, c.GetCacheKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

// Set marshals and stores data in cache
func (c *CacheHelper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Graceful degradation when cache not available
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	return c.client.Set(ctx, c.GetCacheKey(key), data, ttl).Err()
}

// CacheOrExecute implements the cache-aside pattern. A cache failure never
// fails the call; only fetchFunc errors are returned.
func (c *CacheHelper) CacheOrExecute(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetchFunc func() (interface{}, error)) error {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrCacheNotFound) && !errors.Is(err, ErrCacheNotAvailable) {
		slog.InfoContext(ctx, "Cache get error, proceeding to fetch", "error", err, "key", key)
	}

	value, err := fetchFunc()
	if err != nil {
		return err
	}

	if c.client != nil {
		// Store asynchronously; the write must outlive the request context
		go func(parentCtx context.Context) {
			ctxWithTimeout, cancel := context.WithTimeout(context.WithoutCancel(parentCtx), 5*time.Second)
			defer cancel()
			if err := c.Set(ctxWithTimeout, key, value, ttl); err != nil {
				slog.Error("Cache set error", "error", err, "key", key)
			}
		}(ctx)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal result error: %w", err)
	}

	return json.Unmarshal(data, dest)
}

// CacheManager manages the cache helpers of each data type
type CacheManager struct {
	client *redis.Client
	Tool   *CacheHelper
	Scale  *CacheHelper
}

// NewCacheManager creates cache manager with all cache helpers. A nil client
// yields helpers that always miss.
func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		client: client,
		Tool:   NewCacheHelper(client, ToolCacheConfig.Prefix),
		Scale:  NewCacheHelper(client, ScaleCacheConfig.Prefix),
	}
}

// Enabled reports whether a Redis client backs the manager
func (cm *CacheManager) Enabled() bool {
	return cm.client != nil
}

// HealthCheck verifies cache connectivity
func (cm *CacheManager) HealthCheck(ctx context.Context) error {
	if !cm.Enabled() {
		return ErrCacheNotAvailable
	}

	if _, err := cm.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}

	return nil
}
