package queue

import (
	"context"
	"time"

	"todolist-api/internal/domain/model"
)

// QueueURLResolver is implemented by pkg/sqs.Sender
type QueueURLResolver interface {
	QueueURL(ctx context.Context, queueName string) (string, error)
}

type SQSHealthGateway struct {
	resolver   QueueURLResolver
	queueNames []string
}

var _ HealthGateway = (*SQSHealthGateway)(nil)

func NewSQSHealthGateway(resolver QueueURLResolver, queueNames ...string) *SQSHealthGateway {
	return &SQSHealthGateway{resolver: resolver, queueNames: queueNames}
}

func (gateway *SQSHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if len(gateway.queueNames) == 0 {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "No queues registered"},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := model.StatusUp
	details := make(map[string]string, len(gateway.queueNames))
	for _, name := range gateway.queueNames {
		url, err := gateway.resolver.QueueURL(ctx, name)
		if err != nil {
			status = model.StatusDown
			details[name] = err.Error()
			continue
		}
		details[name] = url
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
