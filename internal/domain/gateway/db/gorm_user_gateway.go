package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todolist-api/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", email, entity.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", email, err)
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByIDs(ctx context.Context, ids []uint) ([]entity.User, error) {
	if len(ids) == 0 {
		return []entity.User{}, nil
	}
	var users []entity.User
	if err := gateway.DB.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

func (gateway *GormUserGateway) Create(ctx context.Context, user *entity.User) error {
	if err := gateway.DB.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	return nil
}

// DeleteByEmail removes the user together with their checklists, task links and tasks.
func (gateway *GormUserGateway) DeleteByEmail(ctx context.Context, email string) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		err := tx.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s: %w", email, entity.ErrUserNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to find user %s: %w", email, err)
		}

		statements := []string{
			"DELETE FROM " + checklistTasksTable + " WHERE checklist_id IN (SELECT id FROM checklists WHERE user_id = ?)",
			"DELETE FROM " + checklistTasksTable + " WHERE task_id IN (SELECT id FROM tasks WHERE user_id = ?)",
			"DELETE FROM checklists WHERE user_id = ?",
			"DELETE FROM tasks WHERE user_id = ?",
		}
		for _, statement := range statements {
			if err := tx.Exec(statement, user.ID).Error; err != nil {
				return fmt.Errorf("failed to delete data of user %s: %w", email, err)
			}
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("failed to delete user %s: %w", email, err)
		}
		return nil
	})
}
