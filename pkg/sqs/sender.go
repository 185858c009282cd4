package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSClient defines the interface for SQS operations
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue.
// queue may be a queue name or a full queue URL.
func (s *Sender) SendMessage(ctx context.Context, queue string, body any) (string, error) {
	queueURL, err := s.getQueueURL(ctx, queue)
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queue, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	output, err := s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message to queue %s: %w", queue, err)
	}

	if output.MessageId == nil {
		return "", nil
	}
	return *output.MessageId, nil
}

// getQueueURL retrieves the URL for the specified queue name
func (s *Sender) getQueueURL(ctx context.Context, queue string) (string, error) {
	if strings.HasPrefix(queue, "https://") || strings.HasPrefix(queue, "http://") {
		return queue, nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queue,
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queue)
	}
	return *result.QueueUrl, nil
}
