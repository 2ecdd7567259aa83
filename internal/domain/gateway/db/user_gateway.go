package db

import (
	"context"

	"todolist-api/internal/domain/entity"
)

type UserGateway interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	DeleteByEmail(ctx context.Context, email string) error
}
