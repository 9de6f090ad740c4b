package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
)

// errObjectMissing is what ObjectStorageClient implementations return for a
// missing object.
var errObjectMissing = errors.New("object not found")

// ObjectStorageClient is the subset of an S3-style API S3Store needs.
type ObjectStorageClient interface {
	PutObject(ctx context.Context, bucket, key string, data []byte) error
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}

// S3Store keeps one object per key under bucket/prefix.
type S3Store struct {
	client ObjectStorageClient
	bucket string
	prefix string
}

func NewS3Store(client ObjectStorageClient, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key + ".json"
	}
	return path.Join(s.prefix, key+".json")
}

func (s *S3Store) Load(ctx context.Context, key string) (string, error) {
	data, err := s.client.GetObject(ctx, s.bucket, s.objectKey(key))
	if errors.Is(err, errObjectMissing) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("s3 get %s/%s: %w", s.bucket, s.objectKey(key), err)
	}
	return string(data), nil
}

func (s *S3Store) Save(ctx context.Context, key, value string) error {
	if err := s.client.PutObject(ctx, s.bucket, s.objectKey(key), []byte(value)); err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", s.bucket, s.objectKey(key), err)
	}
	return nil
}

func (s *S3Store) Remove(ctx context.Context, key string) error {
	if err := s.client.DeleteObject(ctx, s.bucket, s.objectKey(key)); err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", s.bucket, s.objectKey(key), err)
	}
	return nil
}

func (s *S3Store) Close() error { return nil }

var (
	_ Adapter = (*S3Store)(nil)
	_ Adapter = (*RedisStore)(nil)
	_ Adapter = (*SQLiteStore)(nil)
	_ Adapter = (*FileStore)(nil)
	_ Adapter = (*MemoryStore)(nil)
)
