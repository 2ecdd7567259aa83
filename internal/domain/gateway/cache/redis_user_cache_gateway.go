package cache

import (
	"context"
	"errors"
	"strings"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/pkg/redis"
)

const UserCacheName = "users"

type RedisUserCacheGateway struct {
	cache  *redis.Cache
	client *redis.Client
}

var _ UserCacheGateway = (*RedisUserCacheGateway)(nil)
var _ HealthGateway = (*RedisUserCacheGateway)(nil)

func NewRedisUserCacheGateway(client *redis.Client) *RedisUserCacheGateway {
	return &RedisUserCacheGateway{
		cache:  redis.NewCache(client, UserCacheName, 0),
		client: client,
	}
}

func cacheKey(email string) string {
	return strings.ToLower(email)
}

func (gateway *RedisUserCacheGateway) Get(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := gateway.cache.Get(ctx, cacheKey(email), &user)
	if errors.Is(err, redis.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *RedisUserCacheGateway) Set(ctx context.Context, user entity.User) error {
	return gateway.cache.Set(ctx, cacheKey(user.Email), user)
}

func (gateway *RedisUserCacheGateway) Evict(ctx context.Context, email string) error {
	return gateway.cache.Delete(ctx, cacheKey(email))
}

func (gateway *RedisUserCacheGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.client.Health(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}
