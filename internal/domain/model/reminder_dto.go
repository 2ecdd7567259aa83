package model

// TaskDueEvent is published for every task whose end date is close
type TaskDueEvent struct {
	TaskID  uint   `json:"taskId"`
	UserID  uint   `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	EndDate Date   `json:"endDate"`
}
