package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/user"
	"todolist-api/pkg/log"
	"todolist-api/pkg/msg"
	"todolist-api/pkg/oidc"
)

// TokenVerifier is implemented by oidc.Verifier
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (*oidc.Claims, error)
}

// PublicPathSkipper skips authentication for the API root, health checks and the swagger UI.
func PublicPathSkipper(contextPath string) echomw.Skipper {
	contextPath = strings.TrimRight(contextPath, "/")
	return func(c echo.Context) bool {
		path := strings.TrimPrefix(c.Request().URL.Path, contextPath)
		return path == "" || path == "/" || path == "/health" || strings.HasPrefix(path, "/swagger/")
	}
}

// Authentication validates the bearer token and stores the matching user under UserContextKey.
func Authentication(verifier TokenVerifier, userUseCase user.UseCase, skipper echomw.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = echomw.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) || c.Request().Method == http.MethodOptions {
				return next(c)
			}

			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized(c, msg.GetMessage("auth.error.missing-token"))
			}

			ctx := c.Request().Context()
			claims, err := verifier.Verify(ctx, raw)
			if err != nil {
				if errors.Is(err, oidc.ErrInvalidToken) {
					log.Debug("rejected bearer token", zap.Error(err))
				} else {
					log.Error("bearer token could not be verified", zap.Error(err))
				}
				return unauthorized(c, msg.GetMessage("auth.error.invalid-token"))
			}
			if strings.TrimSpace(claims.Email) == "" {
				return unauthorized(c, msg.GetMessage("auth.error.missing-email"))
			}

			current, err := userUseCase.GetUser(ctx, model.UserClaims{
				Subject:           claims.Subject,
				Email:             claims.Email,
				GivenName:         claims.GivenName,
				PreferredUsername: claims.PreferredUsername,
			})
			if err != nil {
				log.Error(msg.GetMessage("app.error.unexpected"), zap.String("email", claims.Email), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, model.ErrorResponseDto{Error: msg.GetMessage("app.error.unexpected")})
			}

			c.Set(UserContextKey, current)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, model.ErrorResponseDto{Error: message})
}
