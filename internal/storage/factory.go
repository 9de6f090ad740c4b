package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runnerr0/toolmarks/internal/config"
)

// Open builds the Adapter selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Adapter, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	switch cfg.Backend {
	case "sqlite", "":
		path, err := cfg.ResolvePath(cfg.SQLiteFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("storage: using sqlite backend", "path", path)
		return OpenSQLiteStore(path)
	case "file":
		dir, err := cfg.ResolvePath(cfg.FileDir)
		if err != nil {
			return nil, err
		}
		logger.Debug("storage: using file backend", "dir", dir)
		return NewFileStore(dir)
	case "redis":
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("storage: redis backend requires storage.redis_url")
		}
		logger.Debug("storage: using redis backend", "url", cfg.RedisURL, "prefix", cfg.RedisPrefix)
		return NewRedisStore(newGoRedisClient(cfg.RedisURL), cfg.RedisPrefix), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("storage: s3 backend requires a non-empty storage.s3_bucket")
		}
		client, err := newAWSS3Client(ctx, cfg.S3Region)
		if err != nil {
			return nil, fmt.Errorf("storage: create s3 client: %w", err)
		}
		logger.Debug("storage: using s3 backend", "bucket", cfg.S3Bucket, "region", cfg.S3Region)
		return NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix), nil
	case "memory":
		logger.Debug("storage: using in-memory backend, state is lost on exit")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
