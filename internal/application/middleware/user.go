package middleware

import (
	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/entity"
)

// UserContextKey is the echo context key holding the authenticated *entity.User
const UserContextKey = "user"

// CurrentUser returns the user resolved by the authentication middleware.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(UserContextKey).(*entity.User)
	return user, ok && user != nil
}
