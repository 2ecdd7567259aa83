package model

import (
	"todolist-api/internal/domain/entity"
	"todolist-api/pkg/hal"
)

type ChecklistRequestDto struct {
	Name string `json:"name" example:"Weekend"`
}

type ChecklistResponseDto struct {
	ID    uint              `json:"id"`
	Name  string            `json:"name"`
	Tasks []TaskResponseDto `json:"tasks"`
	Links hal.Links         `json:"_links"`
}

type ChecklistCollectionDto struct {
	Embedded struct {
		Checklists []ChecklistResponseDto `json:"checklists"`
	} `json:"_embedded"`
	Links hal.Links `json:"_links"`
}

func NewChecklistResponseDto(linker hal.Linker, checklist entity.Checklist) ChecklistResponseDto {
	tasks := make([]TaskResponseDto, 0, len(checklist.Tasks))
	for _, task := range checklist.Tasks {
		tasks = append(tasks, NewChecklistItemDto(linker, checklist.ID, task))
	}

	return ChecklistResponseDto{
		ID:    checklist.ID,
		Name:  checklist.Name,
		Tasks: tasks,
		Links: hal.Links{
			"self":       linker.Link("/checklists/%d", checklist.ID),
			"checklists": linker.Link("/checklists"),
			"relations":  linker.Link("/checklists/tasks"),
		},
	}
}

func NewChecklistCollectionDto(linker hal.Linker, checklists []entity.Checklist) ChecklistCollectionDto {
	collection := ChecklistCollectionDto{Links: hal.Links{
		"self":      linker.Link("/checklists"),
		"relations": linker.Link("/checklists/tasks"),
	}}
	collection.Embedded.Checklists = make([]ChecklistResponseDto, 0, len(checklists))
	for _, checklist := range checklists {
		collection.Embedded.Checklists = append(collection.Embedded.Checklists, NewChecklistResponseDto(linker, checklist))
	}
	return collection
}
