package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/task"
)

type TaskController struct {
	api     *echo.Group
	useCase task.UseCase
}

func NewTaskController(api *echo.Group, useCase task.UseCase) *TaskController {
	return &TaskController{api: api, useCase: useCase}
}

// InitTaskRoutes initializes task routes
func (controller *TaskController) InitTaskRoutes() {
	controller.api.GET("/tasks", controller.GetAll)
	controller.api.GET("/tasks/:id", controller.GetByID)
	controller.api.POST("/tasks", controller.Create)
	controller.api.PUT("/tasks/:id", controller.Update)
	controller.api.DELETE("/tasks/:id", controller.Delete)
}

// GetAll godoc
// @Summary List tasks
// @Description Retrieve every task of the authenticated user
// @Tags tasks
// @Produce application/hal+json
// @Security BearerAuth
// @Success 200 {object} model.TaskCollectionDto
// @Failure 401 {object} model.ErrorResponseDto
// @Router /tasks [get]
func (controller *TaskController) GetAll(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tasks, err := controller.useCase.GetAll(c.Request().Context(), user.ID)
	if err != nil {
		return handleError(c, err, resourceIDs{})
	}
	return renderHAL(c, http.StatusOK, model.NewTaskCollectionDto(linker(c), tasks))
}

// GetByID godoc
// @Summary Get a task
// @Tags tasks
// @Produce application/hal+json
// @Security BearerAuth
// @Param id path int true "Task id"
// @Success 200 {object} model.TaskResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid id"
// @Failure 404 {object} model.ErrorResponseDto "Task not found"
// @Router /tasks/{id} [get]
func (controller *TaskController) GetByID(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	found, err := controller.useCase.GetByID(c.Request().Context(), user.ID, id)
	if err != nil {
		return handleError(c, err, resourceIDs{task: id})
	}
	return renderHAL(c, http.StatusOK, model.NewTaskResponseDto(linker(c), *found))
}

// Create godoc
// @Summary Create a task
// @Description The start date defaults to today. A task must not start in the past nor end before it starts.
// @Tags tasks
// @Accept json
// @Produce application/hal+json
// @Security BearerAuth
// @Param task body model.TaskRequestDto true "Task"
// @Success 201 {object} model.TaskResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid task"
// @Router /tasks [post]
func (controller *TaskController) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var dto model.TaskRequestDto
	if ok, err := bindBody(c, &dto); !ok {
		return err
	}

	created, err := controller.useCase.Create(c.Request().Context(), user.ID, dto.ToEntity())
	if err != nil {
		return handleError(c, err, resourceIDs{})
	}

	response := model.NewTaskResponseDto(linker(c), *created)
	c.Response().Header().Set(echo.HeaderLocation, response.Links["self"].Href)
	return renderHAL(c, http.StatusCreated, response)
}

// Update godoc
// @Summary Replace a task
// @Tags tasks
// @Accept json
// @Produce application/hal+json
// @Security BearerAuth
// @Param id path int true "Task id"
// @Param task body model.TaskRequestDto true "Task"
// @Success 200 {object} model.TaskResponseDto
// @Failure 400 {object} model.ErrorResponseDto "Invalid task"
// @Failure 404 {object} model.ErrorResponseDto "Task not found"
// @Router /tasks/{id} [put]
func (controller *TaskController) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var dto model.TaskRequestDto
	if ok, err := bindBody(c, &dto); !ok {
		return err
	}

	updated, err := controller.useCase.Update(c.Request().Context(), user.ID, id, dto.ToEntity())
	if err != nil {
		return handleError(c, err, resourceIDs{task: id})
	}
	return renderHAL(c, http.StatusOK, model.NewTaskResponseDto(linker(c), *updated))
}

// Delete godoc
// @Summary Delete a task
// @Description The task is removed from every checklist it belongs to
// @Tags tasks
// @Security BearerAuth
// @Param id path int true "Task id"
// @Success 204
// @Failure 404 {object} model.ErrorResponseDto "Task not found"
// @Router /tasks/{id} [delete]
func (controller *TaskController) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := controller.useCase.Delete(c.Request().Context(), user.ID, id); err != nil {
		return handleError(c, err, resourceIDs{task: id})
	}
	return c.NoContent(http.StatusNoContent)
}
