package entity

// Checklist is a named collection of the owner's tasks.
type Checklist struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`
	Tasks  []Task `gorm:"many2many:checklist_tasks"`
}

// Contains reports whether a task with taskID is part of the checklist.
func (c *Checklist) Contains(taskID uint) bool {
	for _, task := range c.Tasks {
		if task.ID == taskID {
			return true
		}
	}
	return false
}

// RemoveTask drops every task with taskID.
func (c *Checklist) RemoveTask(taskID uint) {
	tasks := c.Tasks[:0]
	for _, task := range c.Tasks {
		if task.ID != taskID {
			tasks = append(tasks, task)
		}
	}
	c.Tasks = tasks
}
