package storage

import (
	"context"

	"weather-etl/internal/domain/model"
)

// ObjectStorageGateway writes objects into a bucket.
type ObjectStorageGateway interface {
	PutObject(ctx context.Context, bucket, key, contentType string, body []byte) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
