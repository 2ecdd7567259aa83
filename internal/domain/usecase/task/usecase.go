package task

import (
	"context"

	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	Create(ctx context.Context, userID uint, task entity.Task) (*entity.Task, error)
	Update(ctx context.Context, userID uint, taskID uint, task entity.Task) (*entity.Task, error)
	GetAll(ctx context.Context, userID uint) ([]entity.Task, error)
	GetByID(ctx context.Context, userID uint, taskID uint) (*entity.Task, error)
	Delete(ctx context.Context, userID uint, taskID uint) error
	Validate(task entity.Task) error
}
