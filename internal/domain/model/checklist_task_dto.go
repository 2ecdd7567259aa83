package model

import (
	"todolist-api/internal/domain/entity"
	"todolist-api/pkg/hal"
)

type ChecklistTaskRequestDto struct {
	ChecklistID uint `json:"checklistId" example:"301"`
	TaskID      uint `json:"taskId" example:"201"`
}

type ChecklistTaskResponseDto struct {
	ChecklistID uint      `json:"checklistId"`
	TaskID      uint      `json:"taskId"`
	Links       hal.Links `json:"_links"`
}

type ChecklistTaskCollectionDto struct {
	Embedded struct {
		Relations []ChecklistTaskResponseDto `json:"relations"`
	} `json:"_embedded"`
	Links hal.Links `json:"_links"`
}

func NewChecklistTaskResponseDto(linker hal.Linker, relation entity.ChecklistTask) ChecklistTaskResponseDto {
	return ChecklistTaskResponseDto{
		ChecklistID: relation.ChecklistID,
		TaskID:      relation.TaskID,
		Links: hal.Links{
			"checklist":  linker.Link("/checklists/%d", relation.ChecklistID),
			"task":       linker.Link("/tasks/%d", relation.TaskID),
			"removeTask": linker.Link("/checklists/%d/tasks/%d", relation.ChecklistID, relation.TaskID),
			"relations":  linker.Link("/checklists/tasks"),
		},
	}
}

func NewChecklistTaskCollectionDto(linker hal.Linker, relations []entity.ChecklistTask) ChecklistTaskCollectionDto {
	collection := ChecklistTaskCollectionDto{Links: hal.Links{
		"self":      linker.Link("/checklists/tasks"),
		"relations": linker.Link("/checklists/tasks"),
	}}
	collection.Embedded.Relations = make([]ChecklistTaskResponseDto, 0, len(relations))
	for _, relation := range relations {
		collection.Embedded.Relations = append(collection.Embedded.Relations, NewChecklistTaskResponseDto(linker, relation))
	}
	return collection
}
