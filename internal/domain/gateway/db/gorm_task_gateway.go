package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"todolist-api/internal/domain/entity"
)

const checklistTasksTable = "checklist_tasks"

type GormTaskGateway struct {
	DB *gorm.DB
}

var _ TaskGateway = (*GormTaskGateway)(nil)

func NewGormTaskGateway(db *gorm.DB) *GormTaskGateway {
	return &GormTaskGateway{DB: db}
}

func (gateway *GormTaskGateway) FindAllByUserID(ctx context.Context, userID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := gateway.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks of user %d: %w", userID, err)
	}
	return tasks, nil
}

func (gateway *GormTaskGateway) FindByIDAndUserID(ctx context.Context, id uint, userID uint) (*entity.Task, error) {
	var task entity.Task
	err := gateway.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("task %d: %w", id, entity.ErrTaskNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task %d: %w", id, err)
	}
	return &task, nil
}

// FindEndingBetween returns the tasks of every user whose end date is within [from, to].
func (gateway *GormTaskGateway) FindEndingBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.Task, error) {
	var tasks []entity.Task
	err := gateway.DB.WithContext(ctx).
		Where("end_date IS NOT NULL AND end_date >= ? AND end_date <= ?", entity.DateOf(from), entity.DateOf(to)).
		Order("user_id").Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks ending between %s and %s: %w", from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}
	return tasks, nil
}

func (gateway *GormTaskGateway) Create(ctx context.Context, task *entity.Task) error {
	if err := gateway.DB.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (gateway *GormTaskGateway) Update(ctx context.Context, task *entity.Task) error {
	result := gateway.DB.WithContext(ctx).Model(&entity.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Select("name", "description", "start_date", "end_date").
		Updates(map[string]any{
			"name":        task.Name,
			"description": task.Description,
			"start_date":  task.StartDate,
			"end_date":    task.EndDate,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %d: %w", task.ID, entity.ErrTaskNotFound)
	}
	return nil
}

// Delete removes the task and its checklist memberships.
func (gateway *GormTaskGateway) Delete(ctx context.Context, id uint, userID uint) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task entity.Task
		err := tx.Select("id").Where("id = ? AND user_id = ?", id, userID).First(&task).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("task %d: %w", id, entity.ErrTaskNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to find task %d: %w", id, err)
		}

		if err := tx.Exec("DELETE FROM "+checklistTasksTable+" WHERE task_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to remove task %d from checklists: %w", id, err)
		}
		if err := tx.Delete(&entity.Task{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete task %d: %w", id, err)
		}
		return nil
	})
}
