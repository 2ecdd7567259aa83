package checklist

import (
	"context"

	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	Create(ctx context.Context, userID uint, checklist entity.Checklist) (*entity.Checklist, error)
	GetChecklists(ctx context.Context, userID uint) ([]entity.Checklist, error)
	GetChecklist(ctx context.Context, checklistID uint, userID uint) (*entity.Checklist, error)
	Update(ctx context.Context, checklist entity.Checklist) (*entity.Checklist, error)
	Rename(ctx context.Context, userID uint, checklistID uint, name string) (*entity.Checklist, error)
	Delete(ctx context.Context, userID uint, checklistID uint) error
}
