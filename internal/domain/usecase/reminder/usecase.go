package reminder

import "context"

// Result counts the reminders of one run
type Result struct {
	Sent   int
	Failed int
}

type UseCase interface {
	SendDueReminders(ctx context.Context) (Result, error)
}
