package model

import (
	"encoding/json"
	"fmt"
	"time"

	"todolist-api/internal/domain/entity"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate wraps the calendar date of t
func NewDate(t time.Time) Date {
	return Date{Time: entity.DateOf(t)}
}

// NewDatePtr wraps t, keeping nil as nil
func NewDatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	date := NewDate(*t)
	return &date
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string formatted as %s: %w", DateLayout, err)
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return fmt.Errorf("date must be formatted as %s: %w", DateLayout, err)
	}
	d.Time = parsed
	return nil
}

// TimePtr returns the date as *time.Time, nil for a nil Date
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
