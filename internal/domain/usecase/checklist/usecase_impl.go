package checklist

import (
	"context"
	"fmt"
	"strings"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

type checklistUseCase struct {
	gateway db.ChecklistGateway
}

func NewChecklistUseCase(gateway db.ChecklistGateway) UseCase {
	return &checklistUseCase{
		gateway: gateway,
	}
}

func (uc *checklistUseCase) Create(ctx context.Context, userID uint, checklist entity.Checklist) (*entity.Checklist, error) {
	name, err := validName(checklist.Name)
	if err != nil {
		return nil, err
	}

	created := entity.Checklist{Name: name, UserID: userID, Tasks: []entity.Task{}}
	if err := uc.gateway.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (uc *checklistUseCase) GetChecklists(ctx context.Context, userID uint) ([]entity.Checklist, error) {
	return uc.gateway.FindAllByUserID(ctx, userID)
}

func (uc *checklistUseCase) GetChecklist(ctx context.Context, checklistID uint, userID uint) (*entity.Checklist, error) {
	return uc.gateway.FindByIDAndUserID(ctx, checklistID, userID)
}

func (uc *checklistUseCase) Update(ctx context.Context, checklist entity.Checklist) (*entity.Checklist, error) {
	name, err := validName(checklist.Name)
	if err != nil {
		return nil, err
	}
	checklist.Name = name
	return uc.gateway.Update(ctx, &checklist)
}

func (uc *checklistUseCase) Rename(ctx context.Context, userID uint, checklistID uint, name string) (*entity.Checklist, error) {
	if _, err := validName(name); err != nil {
		return nil, err
	}

	checklist, err := uc.gateway.FindByIDAndUserID(ctx, checklistID, userID)
	if err != nil {
		return nil, err
	}
	checklist.Name = name
	return uc.Update(ctx, *checklist)
}

func (uc *checklistUseCase) Delete(ctx context.Context, userID uint, checklistID uint) error {
	return uc.gateway.Delete(ctx, checklistID, userID)
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name is required: %w", entity.ErrInvalidChecklist)
	}
	return name, nil
}
