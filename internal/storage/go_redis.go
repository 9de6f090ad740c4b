package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type goRedisWrapper struct {
	client *redis.Client
}

func newGoRedisClient(url string) RedisClient {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	return &goRedisWrapper{client: redis.NewClient(opts)}
}

func (w *goRedisWrapper) Get(ctx context.Context, key string) (string, error) {
	value, err := w.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errRedisNil
	}
	return value, err
}

func (w *goRedisWrapper) Set(ctx context.Context, key, value string) error {
	return w.client.Set(ctx, key, value, 0).Err()
}

func (w *goRedisWrapper) Del(ctx context.Context, key string) error {
	return w.client.Del(ctx, key).Err()
}

func (w *goRedisWrapper) Close() error {
	return w.client.Close()
}
