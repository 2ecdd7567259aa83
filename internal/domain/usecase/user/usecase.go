package user

import (
	"context"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
)

type UseCase interface {
	GetUser(ctx context.Context, claims model.UserClaims) (*entity.User, error)
	Delete(ctx context.Context, email string) error
}
