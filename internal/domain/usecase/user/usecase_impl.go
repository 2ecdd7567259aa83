package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/cache"
	"todolist-api/internal/domain/gateway/db"
	"todolist-api/internal/domain/model"
	"todolist-api/pkg/log"
	"todolist-api/pkg/msg"
)

type userUseCase struct {
	gateway      db.UserGateway
	cacheGateway cache.UserCacheGateway
}

func NewUserUseCase(gateway db.UserGateway, cacheGateway cache.UserCacheGateway) UseCase {
	if cacheGateway == nil {
		cacheGateway = cache.NoopUserCacheGateway{}
	}
	return &userUseCase{
		gateway:      gateway,
		cacheGateway: cacheGateway,
	}
}

// GetUser resolves the user owning the claims, registering them on first sight.
func (uc *userUseCase) GetUser(ctx context.Context, claims model.UserClaims) (*entity.User, error) {
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil, fmt.Errorf("claims of %s carry no email: %w", claims.Subject, entity.ErrUserNotFound)
	}

	cached, err := uc.cacheGateway.Get(ctx, email)
	if err != nil {
		log.Warn("user cache read failed", zap.String("email", email), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	found, err := uc.gateway.FindByEmail(ctx, email)
	if errors.Is(err, entity.ErrUserNotFound) {
		found, err = uc.register(ctx, email, claims)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.cacheGateway.Set(ctx, *found); err != nil {
		log.Warn("user cache write failed", zap.String("email", email), zap.Error(err))
	}
	return found, nil
}

func (uc *userUseCase) register(ctx context.Context, email string, claims model.UserClaims) (*entity.User, error) {
	created := entity.User{Username: username(claims), Email: email}
	if err := uc.gateway.Create(ctx, &created); err != nil {
		// a concurrent request may have registered the same email
		if existing, findErr := uc.gateway.FindByEmail(ctx, email); findErr == nil {
			return existing, nil
		}
		return nil, err
	}

	log.Info(msg.GetMessage("user.created", email), zap.Uint("user_id", created.ID))
	return &created, nil
}

func (uc *userUseCase) Delete(ctx context.Context, email string) error {
	if err := uc.gateway.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	if err := uc.cacheGateway.Evict(ctx, email); err != nil {
		log.Warn("user cache eviction failed", zap.String("email", email), zap.Error(err))
	}

	log.Info(msg.GetMessage("user.deleted", email))
	return nil
}

func username(claims model.UserClaims) string {
	for _, candidate := range []string{claims.GivenName, claims.PreferredUsername, claims.Email} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return candidate
		}
	}
	return claims.Subject
}
