package reminder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
	"todolist-api/internal/domain/gateway/queue"
	"todolist-api/internal/domain/model"
)

type Config struct {
	QueueName string
	DaysAhead int
}

type reminderUseCase struct {
	taskGateway db.TaskGateway
	userGateway db.UserGateway
	sender      queue.Sender
	config      Config
	now         func() time.Time
}

func NewReminderUseCase(taskGateway db.TaskGateway, userGateway db.UserGateway, sender queue.Sender, config Config, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	if config.DaysAhead < 0 {
		config.DaysAhead = 0
	}
	return &reminderUseCase{
		taskGateway: taskGateway,
		userGateway: userGateway,
		sender:      sender,
		config:      config,
		now:         now,
	}
}

// SendDueReminders publishes a TaskDueEvent for every task ending between today and DaysAhead days from now.
func (uc *reminderUseCase) SendDueReminders(ctx context.Context) (Result, error) {
	today := entity.DateOf(uc.now())
	tasks, err := uc.taskGateway.FindEndingBetween(ctx, today, today.AddDate(0, 0, uc.config.DaysAhead))
	if err != nil {
		return Result{}, err
	}
	if len(tasks) == 0 {
		return Result{}, nil
	}

	users, err := uc.owners(ctx, tasks)
	if err != nil {
		return Result{}, err
	}

	messages := make([]queue.BatchMessage, 0, len(tasks))
	for _, task := range tasks {
		owner, ok := users[task.UserID]
		if !ok || task.EndDate == nil {
			continue
		}
		messages = append(messages, queue.BatchMessage{
			MessageID: uuid.NewString(),
			Body: model.TaskDueEvent{
				TaskID:  task.ID,
				UserID:  owner.ID,
				Email:   owner.Email,
				Name:    task.Name,
				EndDate: model.NewDate(*task.EndDate),
			},
		})
	}

	result, err := uc.sender.SendMessageBatch(ctx, uc.config.QueueName, messages)
	if err != nil {
		return Result{Failed: len(messages)}, err
	}
	return Result{Sent: len(result.Successful), Failed: len(result.Failed)}, nil
}

func (uc *reminderUseCase) owners(ctx context.Context, tasks []entity.Task) (map[uint]entity.User, error) {
	seen := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, task := range tasks {
		if !seen[task.UserID] {
			seen[task.UserID] = true
			ids = append(ids, task.UserID)
		}
	}

	users, err := uc.userGateway.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]entity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}
