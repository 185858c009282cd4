package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"weather-etl/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the subset of the S3 API used here.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type S3Gateway struct {
	client S3Client
	// bucket probed by Health
	bucket string
}

var _ ObjectStorageGateway = (*S3Gateway)(nil)

func NewS3Gateway(client S3Client, bucket string) *S3Gateway {
	return &S3Gateway{client: client, bucket: bucket}
}

func (gateway *S3Gateway) PutObject(ctx context.Context, bucket, key, contentType string, body []byte) error {
	if bucket == "" {
		return fmt.Errorf("bucket name: %w", model.ErrConfigurationMissing)
	}

	_, err := gateway.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

func (gateway *S3Gateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.bucket == "" {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "No bucket configured"},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := gateway.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(gateway.bucket)})
	status := model.NewComponentHealth(err)
	status.Details["bucket"] = gateway.bucket
	return status
}
