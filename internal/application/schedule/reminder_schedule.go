package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todolist-api/internal/domain/usecase/reminder"
	"todolist-api/pkg/log"
	"todolist-api/pkg/msg"
	"todolist-api/pkg/redis"
)

const reminderLockKey = "task_due_reminder"

// ReminderSchedulerConfig holds configuration for the reminder scheduler
type ReminderSchedulerConfig struct {
	CronExpression string
	LockTTL        time.Duration
}

// ReminderScheduler publishes task due reminders on a cron schedule. When a Redis client
// is set each run is guarded by a distributed lock so only one instance sends them.
type ReminderScheduler struct {
	cron        *cron.Cron
	useCase     reminder.UseCase
	redisClient *redis.Client
	config      ReminderSchedulerConfig
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewReminderScheduler(useCase reminder.UseCase, redisClient *redis.Client, config ReminderSchedulerConfig) *ReminderScheduler {
	if config.LockTTL <= 0 {
		config.LockTTL = 5 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ReminderScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// InitReminderScheduleTasks registers the reminder job and starts the cron.
func (s *ReminderScheduler) InitReminderScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}
	s.cron.Start()
	log.Infof("Task due reminder scheduler started with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask runs one reminder pass.
func (s *ReminderScheduler) ExecuteScheduledTask() {
	runID := uuid.NewString()

	if s.redisClient == nil {
		s.run(s.ctx, runID)
		return
	}

	opts := redis.NewLockOptions().WithTTL(s.config.LockTTL).WithLockNamespace("schedules")
	acquired, err := redis.WithLock(s.ctx, s.redisClient, reminderLockKey, opts, func(ctx context.Context) error {
		s.run(ctx, runID)
		return nil
	})
	if err != nil {
		log.Error(msg.GetMessage("reminder.error.failed", runID), zap.String("run_id", runID), zap.Error(err))
		return
	}
	if !acquired {
		log.Info(msg.GetMessage("reminder.cron.skipped", runID), zap.String("run_id", runID))
	}
}

func (s *ReminderScheduler) run(ctx context.Context, runID string) {
	log.Info(msg.GetMessage("reminder.cron.start", runID), zap.String("run_id", runID))

	result, err := s.useCase.SendDueReminders(ctx)
	if err != nil {
		log.Error(msg.GetMessage("reminder.error.failed", runID), zap.String("run_id", runID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("reminder.cron.end", runID, result.Sent, result.Failed),
		zap.String("run_id", runID),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed))
}

// Stop cancels a running job and waits for it to return
func (s *ReminderScheduler) Stop() {
	s.cancel()
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
