package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/user"
)

type UserController struct {
	api     *echo.Group
	useCase user.UseCase
}

func NewUserController(api *echo.Group, useCase user.UseCase) *UserController {
	return &UserController{api: api, useCase: useCase}
}

// InitUserRoutes initializes user routes
func (controller *UserController) InitUserRoutes() {
	controller.api.GET("/user", controller.GetCurrent)
	controller.api.DELETE("/user", controller.Delete)
}

// GetCurrent godoc
// @Summary Get the authenticated user
// @Tags user
// @Produce application/hal+json
// @Security BearerAuth
// @Success 200 {object} model.UserResponseDto
// @Router /user [get]
func (controller *UserController) GetCurrent(c echo.Context) error {
	current, err := currentUser(c)
	if err != nil {
		return err
	}
	return renderHAL(c, http.StatusOK, model.NewUserResponseDto(linker(c), *current))
}

// Delete godoc
// @Summary Delete the authenticated user
// @Description Removes the user with all their tasks and checklists
// @Tags user
// @Security BearerAuth
// @Success 204
// @Router /user [delete]
func (controller *UserController) Delete(c echo.Context) error {
	current, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := controller.useCase.Delete(c.Request().Context(), current.Email); err != nil {
		return handleError(c, err, resourceIDs{})
	}
	return c.NoContent(http.StatusNoContent)
}
