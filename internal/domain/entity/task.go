package entity

import "time"

// Task is a user owned item. StartDate and EndDate are calendar dates stored as UTC midnight.
type Task struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"not null"`
	Description string
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     *time.Time `gorm:"type:date;index"`
	UserID      uint       `gorm:"not null;index"`
}
