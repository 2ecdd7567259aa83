package checklisttask

import (
	"context"

	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	AddTask(ctx context.Context, relation entity.ChecklistTask) (*entity.Checklist, error)
	RemoveTask(ctx context.Context, relation entity.ChecklistTask) (*entity.Checklist, error)
	GetRelations(ctx context.Context, userID uint) ([]entity.ChecklistTask, error)
}
