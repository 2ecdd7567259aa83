package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todolist-api/internal/domain/entity"
)

type GormChecklistGateway struct {
	DB *gorm.DB
}

var _ ChecklistGateway = (*GormChecklistGateway)(nil)

func NewGormChecklistGateway(db *gorm.DB) *GormChecklistGateway {
	return &GormChecklistGateway{DB: db}
}

func preloadTasks(db *gorm.DB) *gorm.DB {
	return db.Preload("Tasks", func(db *gorm.DB) *gorm.DB {
		return db.Order("tasks.id")
	})
}

func (gateway *GormChecklistGateway) FindAllByUserID(ctx context.Context, userID uint) ([]entity.Checklist, error) {
	var checklists []entity.Checklist
	err := preloadTasks(gateway.DB.WithContext(ctx)).Where("user_id = ?", userID).Order("id").Find(&checklists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find checklists of user %d: %w", userID, err)
	}
	return checklists, nil
}

func (gateway *GormChecklistGateway) FindByIDAndUserID(ctx context.Context, id uint, userID uint) (*entity.Checklist, error) {
	return findChecklist(preloadTasks(gateway.DB.WithContext(ctx)), id, userID)
}

func findChecklist(db *gorm.DB, id uint, userID uint) (*entity.Checklist, error) {
	var checklist entity.Checklist
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&checklist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checklist %d: %w", id, entity.ErrChecklistNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find checklist %d: %w", id, err)
	}
	return &checklist, nil
}

// Create inserts the checklist. Tasks already attached are linked, never created.
func (gateway *GormChecklistGateway) Create(ctx context.Context, checklist *entity.Checklist) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := checklist.Tasks
		if err := tx.Omit("Tasks").Create(checklist).Error; err != nil {
			return fmt.Errorf("failed to create checklist: %w", err)
		}
		checklist.Tasks = tasks
		if len(tasks) == 0 {
			return nil
		}
		if err := tx.Model(checklist).Omit("Tasks.*").Association("Tasks").Append(tasks); err != nil {
			return fmt.Errorf("failed to link tasks to checklist %d: %w", checklist.ID, err)
		}
		return nil
	})
}

// Update saves the name, makes the stored task links match checklist.Tasks and returns the reloaded checklist.
func (gateway *GormChecklistGateway) Update(ctx context.Context, checklist *entity.Checklist) (*entity.Checklist, error) {
	var updated *entity.Checklist
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Checklist{}).
			Where("id = ? AND user_id = ?", checklist.ID, checklist.UserID).
			Update("name", checklist.Name)
		if result.Error != nil {
			return fmt.Errorf("failed to update checklist %d: %w", checklist.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("checklist %d: %w", checklist.ID, entity.ErrChecklistNotFound)
		}

		association := tx.Model(&entity.Checklist{ID: checklist.ID}).Omit("Tasks.*").Association("Tasks")
		if len(checklist.Tasks) == 0 {
			err := association.Clear()
			if err != nil {
				return fmt.Errorf("failed to clear tasks of checklist %d: %w", checklist.ID, err)
			}
		} else if err := association.Replace(checklist.Tasks); err != nil {
			return fmt.Errorf("failed to replace tasks of checklist %d: %w", checklist.ID, err)
		}

		reloaded, err := findChecklist(preloadTasks(tx), checklist.ID, checklist.UserID)
		if err != nil {
			return err
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the checklist and its task links. The tasks themselves are kept.
func (gateway *GormChecklistGateway) Delete(ctx context.Context, id uint, userID uint) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findChecklist(tx, id, userID); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+checklistTasksTable+" WHERE checklist_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to unlink tasks of checklist %d: %w", id, err)
		}
		if err := tx.Delete(&entity.Checklist{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete checklist %d: %w", id, err)
		}
		return nil
	})
}
