package entity

import "time"

// DateOf returns the calendar date of t, in t's location, as UTC midnight.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
