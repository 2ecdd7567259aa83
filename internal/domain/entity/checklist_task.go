package entity

// ChecklistTask is the relation between a checklist and one of its tasks. It is derived
// from Checklist.Tasks and has no identity of its own.
type ChecklistTask struct {
	ChecklistID uint
	TaskID      uint
	UserID      uint
}
