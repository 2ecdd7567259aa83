package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/checklist"
)

type ChecklistController struct {
	api     *echo.Group
	useCase checklist.UseCase
}

func NewChecklistController(api *echo.Group, useCase checklist.UseCase) *ChecklistController {
	return &ChecklistController{api: api, useCase: useCase}
}

// InitChecklistRoutes initializes checklist routes. /checklists/tasks is registered by ChecklistTaskController
// and takes precedence over /checklists/:id.
func (controller *ChecklistController) InitChecklistRoutes() {
	controller.api.GET("/checklists", controller.GetAll)
	controller.api.GET("/checklists/:id", controller.GetByID)
	controller.api.POST("/checklists", controller.Create)
	controller.api.PUT("/checklists/:id", controller.Update)
	controller.api.DELETE("/checklists/:id", controller.Delete)
}

// GetAll godoc
// @Summary List checklists
// @Description Retrieve every checklist of the authenticated user with its tasks
// @Tags checklists
// @Produce application/hal+json
// @Security BearerAuth
// @Success 200 {object} model.ChecklistCollectionDto
// @Router /checklists [get]
func (controller *ChecklistController) GetAll(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	checklists, err := controller.useCase.GetChecklists(c.Request().Context(), user.ID)
	if err != nil {
		return handleError(c, err, resourceIDs{})
	}
	return renderHAL(c, http.StatusOK, model.NewChecklistCollectionDto(linker(c), checklists))
}

// GetByID godoc
// @Summary Get a checklist
// @Tags checklists
// @Produce application/hal+json
// @Security BearerAuth
// @Param id path int true "Checklist id"
// @Success 200 {object} model.ChecklistResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid id"
// @Failure 404 {object} model.ErrorResponseDto "Checklist not found"
// @Router /checklists/{id} [get]
func (controller *ChecklistController) GetByID(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	found, err := controller.useCase.GetChecklist(c.Request().Context(), id, user.ID)
	if err != nil {
		return handleError(c, err, resourceIDs{checklist: id})
	}
	return renderHAL(c, http.StatusOK, model.NewChecklistResponseDto(linker(c), *found))
}

// Create godoc
// @Summary Create a checklist
// @Tags checklists
// @Accept json
// @Produce application/hal+json
// @Security BearerAuth
// @Param checklist body model.ChecklistRequestDto true "Checklist"
// @Success 201 {object} model.ChecklistResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid checklist"
// @Router /checklists [post]
func (controller *ChecklistController) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var dto model.ChecklistRequestDto
	if ok, err := bindBody(c, &dto); !ok {
		return err
	}

	created, err := controller.useCase.Create(c.Request().Context(), user.ID, entity.Checklist{Name: dto.Name})
	if err != nil {
		return handleError(c, err, resourceIDs{})
	}

	response := model.NewChecklistResponseDto(linker(c), *created)
	c.Response().Header().Set(echo.HeaderLocation, response.Links["self"].Href)
	return renderHAL(c, http.StatusCreated, response)
}

// Update godoc
// @Summary Rename a checklist
// @Tags checklists
// @Accept json
// @Produce application/hal+json
// @Security BearerAuth
// @Param id path int true "Checklist id"
// @Param checklist body model.ChecklistRequestDto true "Checklist"
// @Success 200 {object} model.ChecklistResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid checklist"
// @Failure 404 {object} model.ErrorResponseDto "Checklist not found"
// @Router /checklists/{id} [put]
func (controller *ChecklistController) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var dto model.ChecklistRequestDto
	if ok, err := bindBody(c, &dto); !ok {
		return err
	}

	renamed, err := controller.useCase.Rename(c.Request().Context(), user.ID, id, dto.Name)
	if err != nil {
		return handleError(c, err, resourceIDs{checklist: id})
	}
	return renderHAL(c, http.StatusOK, model.NewChecklistResponseDto(linker(c), *renamed))
}

// Delete godoc
// @Summary Delete a checklist
// @Description The tasks of the checklist are kept
// @Tags checklists
// @Security BearerAuth
// @Param id path int true "Checklist id"
// @Success 204
// @Failure 404 {object} model.ErrorResponseDto "Checklist not found"
// @Router /checklists/{id} [delete]
func (controller *ChecklistController) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := controller.useCase.Delete(c.Request().Context(), user.ID, id); err != nil {
		return handleError(c, err, resourceIDs{checklist: id})
	}
	return c.NoContent(http.StatusNoContent)
}
