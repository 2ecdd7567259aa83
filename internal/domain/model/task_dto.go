package model

import (
	"todolist-api/internal/domain/entity"
	"todolist-api/pkg/hal"
)

type TaskRequestDto struct {
	Name        string `json:"name" example:"Buy groceries"`
	Description string `json:"description" example:"Milk, eggs and bread"`
	StartDate   *Date  `json:"startDate" swaggertype:"string" format:"date" example:"2030-01-01"`
	EndDate     *Date  `json:"endDate" swaggertype:"string" format:"date" example:"2030-01-02"`
}

// ToEntity maps the request to a task. A missing start date stays zero so the use case can default it.
func (dto TaskRequestDto) ToEntity() entity.Task {
	task := entity.Task{
		Name:        dto.Name,
		Description: dto.Description,
		EndDate:     dto.EndDate.TimePtr(),
	}
	if dto.StartDate != nil {
		task.StartDate = dto.StartDate.Time
	}
	return task
}

type TaskResponseDto struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   Date      `json:"startDate" swaggertype:"string" format:"date"`
	EndDate     *Date     `json:"endDate" swaggertype:"string" format:"date"`
	Links       hal.Links `json:"_links"`
}

type TaskCollectionDto struct {
	Embedded struct {
		Tasks []TaskResponseDto `json:"tasks"`
	} `json:"_embedded"`
	Links hal.Links `json:"_links"`
}

func NewTaskResponseDto(linker hal.Linker, task entity.Task) TaskResponseDto {
	return TaskResponseDto{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		StartDate:   NewDate(task.StartDate),
		EndDate:     NewDatePtr(task.EndDate),
		Links: hal.Links{
			"self":  linker.Link("/tasks/%d", task.ID),
			"tasks": linker.Link("/tasks"),
		},
	}
}

// NewChecklistItemDto renders a task inside a checklist, with a link to remove it from there.
func NewChecklistItemDto(linker hal.Linker, checklistID uint, task entity.Task) TaskResponseDto {
	dto := NewTaskResponseDto(linker, task)
	dto.Links["removeTask"] = linker.Link("/checklists/%d/tasks/%d", checklistID, task.ID)
	return dto
}

func NewTaskCollectionDto(linker hal.Linker, tasks []entity.Task) TaskCollectionDto {
	collection := TaskCollectionDto{Links: hal.Links{"self": linker.Link("/tasks")}}
	collection.Embedded.Tasks = make([]TaskResponseDto, 0, len(tasks))
	for _, task := range tasks {
		collection.Embedded.Tasks = append(collection.Embedded.Tasks, NewTaskResponseDto(linker, task))
	}
	return collection
}
