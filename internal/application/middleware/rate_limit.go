package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"todolist-api/internal/domain/model"
	"todolist-api/pkg/log"
	"todolist-api/pkg/msg"
	"todolist-api/pkg/redis"
)

// Limiter is implemented by redis.RateLimiter
type Limiter interface {
	Allow(ctx context.Context, key string) (redis.RateLimitResult, error)
}

// RateLimit limits requests per authenticated user, or per client IP when no user is set yet.
// Redis failures let the request through.
func RateLimit(limiter Limiter, skipper echomw.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = echomw.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			key := "ip:" + c.RealIP()
			if current, ok := CurrentUser(c); ok {
				key = "user:" + strconv.FormatUint(uint64(current.ID), 10)
			}

			result, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			if !result.Allowed {
				header.Set(echo.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(result.ResetIn.Seconds()))))
				return c.JSON(http.StatusTooManyRequests, model.ErrorResponseDto{Error: msg.GetMessage("app.error.rate-limited")})
			}
			return next(c)
		}
	}
}
