package aws

import (
	"context"

	"weather-etl/internal/domain/gateway/queue"
	"weather-etl/pkg/log"
	"weather-etl/pkg/sqs"

	"go.uber.org/zap"
)

// SQSSenderAdapter adapts the pkg/sqs.Sender to implement domain queue.Sender interface
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

// NewSQSSenderAdapter creates a new SQS sender adapter that implements domain interface
func NewSQSSenderAdapter(sqsClient sqs.SQSClient) queue.Sender {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

// SendMessage implements the domain interface
func (adapter *SQSSenderAdapter) SendMessage(ctx context.Context, queueName string, body any) error {
	messageID, err := adapter.sqsSender.SendMessage(ctx, queueName, body)
	if err != nil {
		return err
	}
	log.Debug("Message sent", zap.String("queue", queueName), zap.String("message_id", messageID))
	return nil
}
