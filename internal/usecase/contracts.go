package usecase

import (
	"context"
	"io"

	"socialnet/pkg/queue"
)

// EventPublisher is satisfied by *queue.Client.
type EventPublisher interface {
	Publish(ctx context.Context, event queue.Event) error
}

// ObjectStorage is satisfied by *s3.Client.
type ObjectStorage interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}
