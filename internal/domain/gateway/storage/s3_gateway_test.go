package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"weather-etl/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	bodies  [][]byte
	putErr  error
	headErr error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, params)
	body, _ := io.ReadAll(params.Body)
	f.bodies = append(f.bodies, body)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(_ context.Context, _ *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func TestPutObject(t *testing.T) {
	client := &fakeS3{}
	gateway := NewS3Gateway(client, "exports")

	err := gateway.PutObject(context.Background(), "exports", "weather-data-export/2026-10-18/export-09-30-00.csv", "text/csv", []byte("city\nRome\n"))

	require.NoError(t, err)
	require.Len(t, client.puts, 1)
	assert.Equal(t, "exports", aws.ToString(client.puts[0].Bucket))
	assert.Equal(t, "weather-data-export/2026-10-18/export-09-30-00.csv", aws.ToString(client.puts[0].Key))
	assert.Equal(t, "text/csv", aws.ToString(client.puts[0].ContentType))
	assert.Equal(t, "city\nRome\n", string(client.bodies[0]))
}

func TestPutObject_MissingBucket(t *testing.T) {
	client := &fakeS3{}

	err := NewS3Gateway(client, "").PutObject(context.Background(), "", "k", "text/csv", []byte("x"))

	assert.ErrorIs(t, err, model.ErrConfigurationMissing)
	assert.Empty(t, client.puts)
}

func TestPutObject_ClientFailure(t *testing.T) {
	client := &fakeS3{putErr: errors.New("NoSuchBucket")}

	err := NewS3Gateway(client, "exports").PutObject(context.Background(), "exports", "k", "text/csv", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchBucket")
}

func TestHealth(t *testing.T) {
	assert.Equal(t, model.StatusUp, NewS3Gateway(&fakeS3{}, "exports").Health(context.Background()).Status)
	assert.Equal(t, model.StatusDown, NewS3Gateway(&fakeS3{headErr: errors.New("forbidden")}, "exports").Health(context.Background()).Status)
	assert.Equal(t, model.StatusUnknown, NewS3Gateway(&fakeS3{}, "").Health(context.Background()).Status)
}
