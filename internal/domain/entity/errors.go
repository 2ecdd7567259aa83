package entity

import "errors"

var (
	ErrInvalidTask       = errors.New("invalid task")
	ErrInvalidChecklist  = errors.New("invalid checklist")
	ErrTaskNotFound      = errors.New("task not found")
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrUserNotFound      = errors.New("user not found")
)
