package cache

import (
	"context"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
)

// UserCacheGateway caches users by email. Get returns (nil, nil) on a miss.
type UserCacheGateway interface {
	Get(ctx context.Context, email string) (*entity.User, error)
	Set(ctx context.Context, user entity.User) error
	Evict(ctx context.Context, email string) error
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
