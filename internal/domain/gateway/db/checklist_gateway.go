package db

import (
	"context"

	"todolist-api/internal/domain/entity"
)

type ChecklistGateway interface {
	FindAllByUserID(ctx context.Context, userID uint) ([]entity.Checklist, error)
	FindByIDAndUserID(ctx context.Context, id uint, userID uint) (*entity.Checklist, error)
	Create(ctx context.Context, checklist *entity.Checklist) error
	Update(ctx context.Context, checklist *entity.Checklist) (*entity.Checklist, error)
	Delete(ctx context.Context, id uint, userID uint) error
}
