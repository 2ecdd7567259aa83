package db

import (
	"context"
	"time"

	"todolist-api/internal/domain/entity"
)

type TaskGateway interface {
	FindAllByUserID(ctx context.Context, userID uint) ([]entity.Task, error)
	FindByIDAndUserID(ctx context.Context, id uint, userID uint) (*entity.Task, error)
	FindEndingBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uint, userID uint) error
}
