package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no value is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Adapter is a string-keyed store of string blobs. Every method may fail;
// callers decide how much of that failure they surface.
type Adapter interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
