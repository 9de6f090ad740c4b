package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

type awsS3Wrapper struct {
	client *s3.Client
}

func newAWSS3Client(ctx context.Context, region string) (ObjectStorageClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &awsS3Wrapper{client: s3.NewFromConfig(cfg)}, nil
}

func (w *awsS3Wrapper) PutObject(ctx context.Context, bucket, key string, data []byte) error {
	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	return err
}

func (w *awsS3Wrapper) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := w.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		if isMissingObject(err) {
			return nil, errObjectMissing
		}
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (w *awsS3Wrapper) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := w.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	return err
}

func isMissingObject(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
