package redis

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when nothing is cached under the key.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores JSON values under CacheName::key with the TTL configured for CacheName.
type Cache struct {
	client     *Client
	name       string
	ttl        time.Duration
	refreshTTL bool
}

// NewCache creates a named cache. A zero ttl uses the client's configured TTL for name.
func NewCache(client *Client, name string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = client.GetConfig().TTLFor(name)
	}
	return &Cache{client: client, name: name, ttl: ttl}
}

// WithRefreshTTL enables sliding expiration on reads
func (c *Cache) WithRefreshTTL(refresh bool) *Cache {
	c.refreshTTL = refresh
	return c
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.name != "" {
		return c.name + "::" + key
	}
	return key
}

// Get decodes the cached value into dest.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	fullKey := c.buildCacheKey(key)
	err := c.client.GetJSON(ctx, fullKey, dest)
	if errors.Is(err, ErrNotFound) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}

	if c.refreshTTL {
		_ = c.client.Expire(ctx, fullKey, c.ttl)
	}
	return nil
}

// Set stores value under key
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	return c.client.SetJSON(ctx, c.buildCacheKey(key), value, c.ttl)
}

// Delete evicts key
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Name returns the cache name
func (c *Cache) Name() string {
	return c.name
}
