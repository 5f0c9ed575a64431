package repository

import (
	"context"
	"fmt"

	"kanbanboard/internal/config"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open builds the blob store selected by cfg.StorageBackend. The returned
// close function releases connections held by the backend.
func Open(ctx context.Context, cfg *config.Config) (BlobStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case "", "file":
		return NewFileStore(cfg.StorageDir), noop, nil

	case "memory":
		return NewMemoryStore(), noop, nil

	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return NewRedisStore(client, ""), client.Close, nil

	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		store := NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, nil, fmt.Errorf("migrate snapshot table: %w", err)
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return store, closeDB, nil

	case "azure":
		if cfg.AzureConnectionString == "" {
			return nil, nil, fmt.Errorf("azure backend: AZURE_STORAGE_CONNECTION_STRING is not set")
		}
		store, err := NewAzureTableStore(cfg.AzureConnectionString, cfg.AzureTableName)
		if err != nil {
			return nil, nil, fmt.Errorf("azure backend: %w", err)
		}
		return store, noop, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StorageBackend)
}
