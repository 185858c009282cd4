package queue

import "context"

// ExportNotification is published after an export object has been written.
type ExportNotification struct {
	Bucket  string `json:"bucket"`
	Key     string `json:"key"`
	Records int    `json:"records"`
}

type Sender interface {
	SendMessage(ctx context.Context, queue string, body any) error
}
