package task

import (
	"context"
	"fmt"
	"time"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

type taskUseCase struct {
	gateway db.TaskGateway
	now     func() time.Time
}

// NewTaskUseCase creates the task use case. now supplies the current day, time.Now when nil.
func NewTaskUseCase(gateway db.TaskGateway, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	return &taskUseCase{
		gateway: gateway,
		now:     now,
	}
}

func (uc *taskUseCase) Create(ctx context.Context, userID uint, task entity.Task) (*entity.Task, error) {
	task = uc.normalize(task)
	if err := uc.Validate(task); err != nil {
		return nil, err
	}

	task.ID = 0
	task.UserID = userID
	if err := uc.gateway.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (uc *taskUseCase) Update(ctx context.Context, userID uint, taskID uint, task entity.Task) (*entity.Task, error) {
	if _, err := uc.gateway.FindByIDAndUserID(ctx, taskID, userID); err != nil {
		return nil, err
	}

	task = uc.normalize(task)
	if err := uc.Validate(task); err != nil {
		return nil, err
	}

	task.ID = taskID
	task.UserID = userID
	if err := uc.gateway.Update(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (uc *taskUseCase) GetAll(ctx context.Context, userID uint) ([]entity.Task, error) {
	return uc.gateway.FindAllByUserID(ctx, userID)
}

func (uc *taskUseCase) GetByID(ctx context.Context, userID uint, taskID uint) (*entity.Task, error) {
	return uc.gateway.FindByIDAndUserID(ctx, taskID, userID)
}

func (uc *taskUseCase) Delete(ctx context.Context, userID uint, taskID uint) error {
	return uc.gateway.Delete(ctx, taskID, userID)
}

// Validate rejects a task that ends before it starts or starts before today.
// A missing end date is open ended.
func (uc *taskUseCase) Validate(task entity.Task) error {
	task = uc.normalize(task)
	today := entity.DateOf(uc.now())

	if task.EndDate != nil && task.EndDate.Before(task.StartDate) {
		return fmt.Errorf("end date %s is before start date %s: %w",
			task.EndDate.Format(time.DateOnly), task.StartDate.Format(time.DateOnly), entity.ErrInvalidTask)
	}
	if task.StartDate.Before(today) {
		return fmt.Errorf("start date %s is in the past: %w", task.StartDate.Format(time.DateOnly), entity.ErrInvalidTask)
	}
	return nil
}

// normalize truncates the dates to calendar days and defaults the start date to today.
func (uc *taskUseCase) normalize(task entity.Task) entity.Task {
	if task.StartDate.IsZero() {
		task.StartDate = uc.now()
	}
	task.StartDate = entity.DateOf(task.StartDate)
	if task.EndDate != nil {
		end := entity.DateOf(*task.EndDate)
		task.EndDate = &end
	}
	return task
}
