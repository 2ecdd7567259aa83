package cache

import (
	"context"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
)

// NoopUserCacheGateway is used when Redis is disabled.
type NoopUserCacheGateway struct{}

var _ UserCacheGateway = NoopUserCacheGateway{}
var _ HealthGateway = NoopUserCacheGateway{}

func (NoopUserCacheGateway) Get(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (NoopUserCacheGateway) Set(context.Context, entity.User) error {
	return nil
}

func (NoopUserCacheGateway) Evict(context.Context, string) error {
	return nil
}

func (NoopUserCacheGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "Redis is disabled"},
	}
}
