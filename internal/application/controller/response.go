package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todolist-api/internal/application/middleware"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/pkg/hal"
	"todolist-api/pkg/log"
	"todolist-api/pkg/msg"
	"todolist-api/pkg/resource"
	"todolist-api/pkg/util/numberutils"
)

// resourceIDs are the ids named in not found messages
type resourceIDs struct {
	task      any
	checklist any
}

func linker(c echo.Context) hal.Linker {
	return hal.FromRequest(c.Request(), resource.GetString("app.server.context-path"))
}

func renderHAL(c echo.Context, status int, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.Blob(status, hal.MediaType, data)
}

func renderError(c echo.Context, status int, message string) error {
	return c.JSON(status, model.ErrorResponseDto{Error: message})
}

// handleError maps domain errors to responses. Anything unknown is logged and answered with 500.
func handleError(c echo.Context, err error, ids resourceIDs) error {
	switch {
	case errors.Is(err, entity.ErrInvalidTask):
		return renderError(c, http.StatusBadRequest, msg.GetMessage("task.error.invalid"))
	case errors.Is(err, entity.ErrInvalidChecklist):
		return renderError(c, http.StatusBadRequest, msg.GetMessage("checklist.error.invalid"))
	case errors.Is(err, entity.ErrTaskNotFound):
		return renderError(c, http.StatusNotFound, msg.GetMessage("task.error.not-found", ids.task))
	case errors.Is(err, entity.ErrChecklistNotFound):
		return renderError(c, http.StatusNotFound, msg.GetMessage("checklist.error.not-found", ids.checklist))
	case errors.Is(err, entity.ErrUserNotFound):
		return renderError(c, http.StatusNotFound, msg.GetMessage("user.error.not-found"))
	}

	log.Error(msg.GetMessage("app.error.unexpected"),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err))
	return renderError(c, http.StatusInternalServerError, msg.GetMessage("app.error.unexpected"))
}

// pathID parses a numeric path parameter. ok is false once the 400 response has been written.
func pathID(c echo.Context, name string) (uint, bool, error) {
	raw := c.Param(name)
	id, err := numberutils.ToUintWithError(raw)
	if err != nil {
		return 0, false, renderError(c, http.StatusBadRequest, msg.GetMessage("app.error.invalid-id", raw))
	}
	return id, true, nil
}

func bindBody(c echo.Context, dto any) (bool, error) {
	if err := c.Bind(dto); err != nil {
		return false, renderError(c, http.StatusBadRequest, msg.GetMessage("app.error.invalid-body"))
	}
	return true, nil
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.ErrUnauthorized
	}
	return user, nil
}
