package model

import "todolist-api/pkg/hal"

type IndexDto struct {
	Links hal.Links `json:"_links"`
}

func NewIndexDto(linker hal.Linker) IndexDto {
	return IndexDto{Links: hal.Links{
		"self":       linker.Link("/"),
		"tasks":      linker.Link("/tasks"),
		"checklists": linker.Link("/checklists"),
		"relations":  linker.Link("/checklists/tasks"),
		"user":       linker.Link("/user"),
	}}
}

// ErrorResponseDto is the body of every error response
type ErrorResponseDto struct {
	Error string `json:"error" example:"Task 42 not found"`
}
