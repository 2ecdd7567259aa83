package checklisttask

import (
	"context"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/usecase/checklist"
	"todolist-api/internal/domain/usecase/task"
)

type checklistTaskUseCase struct {
	taskUseCase      task.UseCase
	checklistUseCase checklist.UseCase
}

func NewChecklistTaskUseCase(taskUseCase task.UseCase, checklistUseCase checklist.UseCase) UseCase {
	return &checklistTaskUseCase{
		taskUseCase:      taskUseCase,
		checklistUseCase: checklistUseCase,
	}
}

// AddTask links the task to the checklist. Adding a task twice leaves the checklist untouched.
func (uc *checklistTaskUseCase) AddTask(ctx context.Context, relation entity.ChecklistTask) (*entity.Checklist, error) {
	added, err := uc.taskUseCase.GetByID(ctx, relation.UserID, relation.TaskID)
	if err != nil {
		return nil, err
	}
	found, err := uc.checklistUseCase.GetChecklist(ctx, relation.ChecklistID, relation.UserID)
	if err != nil {
		return nil, err
	}

	if found.Contains(added.ID) {
		return found, nil
	}

	found.Tasks = append(found.Tasks, *added)
	return uc.checklistUseCase.Update(ctx, *found)
}

// RemoveTask unlinks the task from the checklist. Removing a task that is not linked is not an error.
func (uc *checklistTaskUseCase) RemoveTask(ctx context.Context, relation entity.ChecklistTask) (*entity.Checklist, error) {
	found, err := uc.checklistUseCase.GetChecklist(ctx, relation.ChecklistID, relation.UserID)
	if err != nil {
		return nil, err
	}

	found.RemoveTask(relation.TaskID)
	return uc.checklistUseCase.Update(ctx, *found)
}

func (uc *checklistTaskUseCase) GetRelations(ctx context.Context, userID uint) ([]entity.ChecklistTask, error) {
	checklists, err := uc.checklistUseCase.GetChecklists(ctx, userID)
	if err != nil {
		return nil, err
	}

	relations := make([]entity.ChecklistTask, 0)
	for _, list := range checklists {
		for _, item := range list.Tasks {
			relations = append(relations, entity.ChecklistTask{
				ChecklistID: list.ID,
				TaskID:      item.ID,
				UserID:      userID,
			})
		}
	}
	return relations, nil
}
