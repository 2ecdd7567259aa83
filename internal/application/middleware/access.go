package middleware

import (
	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/usecase/user"
)

// AccessControl groups what SetupAccessControl needs. Nil limiters are not installed.
type AccessControl struct {
	Verifier    TokenVerifier
	Users       user.UseCase
	ContextPath string
	// IPLimiter runs before authentication, so requests with bad tokens are limited as well.
	IPLimiter   Limiter
	UserLimiter Limiter
}

// SetupAccessControl installs the per IP limiter, bearer authentication and the per user limiter, in that order.
// Public paths skip all three.
func SetupAccessControl(e *echo.Echo, config AccessControl) {
	publicPaths := PublicPathSkipper(config.ContextPath)
	if config.IPLimiter != nil {
		e.Use(RateLimit(config.IPLimiter, publicPaths))
	}
	e.Use(Authentication(config.Verifier, config.Users, publicPaths))
	if config.UserLimiter != nil {
		e.Use(RateLimit(config.UserLimiter, publicPaths))
	}
}
