package model

import (
	"todolist-api/internal/domain/entity"
	"todolist-api/pkg/hal"
)

// UserClaims are the identity provider claims used to resolve the current user
type UserClaims struct {
	Subject           string
	Email             string
	GivenName         string
	PreferredUsername string
}

type UserResponseDto struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Links    hal.Links `json:"_links"`
}

func NewUserResponseDto(linker hal.Linker, user entity.User) UserResponseDto {
	return UserResponseDto{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Links: hal.Links{
			"self":       linker.Link("/user"),
			"tasks":      linker.Link("/tasks"),
			"checklists": linker.Link("/checklists"),
		},
	}
}
