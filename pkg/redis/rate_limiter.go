package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// RateLimiter is a fixed window counter shared by every instance connected to the same Redis.
type RateLimiter struct {
	client    *Client
	namespace string
	limit     int
	window    time.Duration
}

// RateLimitResult describes the state of a key after a call to Allow.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// NewRateLimiter allows limit calls per window and key.
func NewRateLimiter(client *Client, namespace string, limit int, window time.Duration) (*RateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid rate limit: %d, must be positive", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("invalid rate limit window: %v, must be positive", window)
	}
	return &RateLimiter{client: client, namespace: namespace, limit: limit, window: window}, nil
}

// buildKey constructs the key using Namespace::key::window format
func (rl *RateLimiter) buildKey(key string, now time.Time) string {
	bucket := strconv.FormatInt(now.UnixNano()/int64(rl.window), 10)
	if rl.namespace != "" {
		return rl.namespace + "::" + key + "::" + bucket
	}
	return key + "::" + bucket
}

// Allow counts one call for key and reports whether it fits in the current window.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	now := time.Now()
	fullKey := rl.buildKey(key, now)

	pipe := rl.client.GetClient().TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.Expire(ctx, fullKey, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to apply rate limit: %w", err)
	}

	count := int(incr.Val())
	remaining := rl.limit - count
	if remaining < 0 {
		remaining = 0
	}
	windowStart := time.Unix(0, (now.UnixNano()/int64(rl.window))*int64(rl.window))

	return RateLimitResult{
		Allowed:   count <= rl.limit,
		Limit:     rl.limit,
		Remaining: remaining,
		ResetIn:   windowStart.Add(rl.window).Sub(now),
	}, nil
}
