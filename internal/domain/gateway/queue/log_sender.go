package queue

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"todolist-api/internal/domain/model"
	"todolist-api/pkg/log"
)

// LogSender writes messages to the log instead of a queue. Used when SQS is disabled.
type LogSender struct{}

var _ Sender = LogSender{}
var _ HealthGateway = LogSender{}

func (LogSender) SendMessage(_ context.Context, queueName string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	log.Info("queue message", zap.String("queue", queueName), zap.ByteString("body", payload))
	return nil
}

func (sender LogSender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{Successful: []string{}, Failed: []string{}}
	for _, message := range messages {
		if err := sender.SendMessage(ctx, queueName, message.Body); err != nil {
			result.Failed = append(result.Failed, message.MessageID)
			continue
		}
		result.Successful = append(result.Successful, message.MessageID)
	}
	return result, nil
}

func (LogSender) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "SQS is disabled, messages are logged"},
	}
}
