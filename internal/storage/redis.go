package storage

import (
	"context"
	"errors"
	"fmt"
)

// errRedisNil is what RedisClient implementations return for a missing key.
var errRedisNil = errors.New("redis: nil")

// RedisClient is the subset of Redis commands RedisStore needs.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
	Close() error
}

// RedisStore keeps each value as a plain Redis string under prefix+key.
type RedisStore struct {
	client RedisClient
	prefix string
}

func NewRedisStore(client RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Load(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefix+key)
	if errors.Is(err, errRedisNil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", r.prefix+key, err)
	}
	return value, nil
}

func (r *RedisStore) Save(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value); err != nil {
		return fmt.Errorf("redis set %s: %w", r.prefix+key, err)
	}
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key); err != nil {
		return fmt.Errorf("redis del %s: %w", r.prefix+key, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
