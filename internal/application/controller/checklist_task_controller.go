package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/checklisttask"
)

type ChecklistTaskController struct {
	api     *echo.Group
	useCase checklisttask.UseCase
}

func NewChecklistTaskController(api *echo.Group, useCase checklisttask.UseCase) *ChecklistTaskController {
	return &ChecklistTaskController{api: api, useCase: useCase}
}

// InitChecklistTaskRoutes initializes checklist task relation routes
func (controller *ChecklistTaskController) InitChecklistTaskRoutes() {
	controller.api.GET("/checklists/tasks", controller.GetRelations)
	controller.api.PUT("/checklists/tasks", controller.AddTask)
	controller.api.DELETE("/checklists/:checklistId/tasks/:taskId", controller.RemoveTask)
}

// GetRelations godoc
// @Summary List checklist task relations
// @Description One relation per task in each checklist of the authenticated user
// @Tags relations
// @Produce application/hal+json
// @Security BearerAuth
// @Success 200 {object} model.ChecklistTaskCollectionDto
// @Router /checklists/tasks [get]
func (controller *ChecklistTaskController) GetRelations(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	relations, err := controller.useCase.GetRelations(c.Request().Context(), user.ID)
	if err != nil {
		return handleError(c, err, resourceIDs{})
	}
	return renderHAL(c, http.StatusOK, model.NewChecklistTaskCollectionDto(linker(c), relations))
}

// AddTask godoc
// @Summary Add a task to a checklist
// @Description Adding a task that is already part of the checklist leaves it unchanged
// @Tags relations
// @Accept json
// @Produce application/hal+json
// @Security BearerAuth
// @Param relation body model.ChecklistTaskRequestDto true "Relation"
// @Success 200 {object} model.ChecklistResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid body"
// @Failure 404 {object} model.ErrorResponseDto "Task or checklist not found"
// @Router /checklists/tasks [put]
func (controller *ChecklistTaskController) AddTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var dto model.ChecklistTaskRequestDto
	if ok, err := bindBody(c, &dto); !ok {
		return err
	}

	updated, err := controller.useCase.AddTask(c.Request().Context(), entity.ChecklistTask{
		ChecklistID: dto.ChecklistID,
		TaskID:      dto.TaskID,
		UserID:      user.ID,
	})
	if err != nil {
		return handleError(c, err, resourceIDs{task: dto.TaskID, checklist: dto.ChecklistID})
	}
	return renderHAL(c, http.StatusOK, model.NewChecklistResponseDto(linker(c), *updated))
}

// RemoveTask godoc
// @Summary Remove a task from a checklist
// @Tags relations
// @Produce application/hal+json
// @Security BearerAuth
// @Param checklistId path int true "Checklist id"
// @Param taskId path int true "Task id"
// @Success 200 {object} model.ChecklistResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid id"
// @Failure 404 {object} model.ErrorResponseDto "Checklist not found"
// @Router /checklists/{checklistId}/tasks/{taskId} [delete]
func (controller *ChecklistTaskController) RemoveTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	checklistID, ok, err := pathID(c, "checklistId")
	if !ok {
		return err
	}
	taskID, ok, err := pathID(c, "taskId")
	if !ok {
		return err
	}

	updated, err := controller.useCase.RemoveTask(c.Request().Context(), entity.ChecklistTask{
		ChecklistID: checklistID,
		TaskID:      taskID,
		UserID:      user.ID,
	})
	if err != nil {
		return handleError(c, err, resourceIDs{task: taskID, checklist: checklistID})
	}
	return renderHAL(c, http.StatusOK, model.NewChecklistResponseDto(linker(c), *updated))
}
