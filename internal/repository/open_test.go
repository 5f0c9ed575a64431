package repository_test

import (
	"context"
	"errors"
	"testing"

	"kanbanboard/internal/config"
	"kanbanboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)

	tests := []struct {
		name string
		cfg  config.Config
		want any
	}{
		{name: "default is file", cfg: config.Config{StorageDir: t.TempDir()}, want: &repository.FileStore{}},
		{name: "memory", cfg: config.Config{StorageBackend: "memory"}, want: &repository.MemoryStore{}},
		{name: "redis", cfg: config.Config{StorageBackend: "redis", RedisURL: "redis://" + client.Options().Addr}, want: &repository.RedisStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closeFn, err := repository.Open(ctx, &tt.cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = closeFn() })
			assert.IsType(t, tt.want, store)
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := repository.Open(ctx, &config.Config{StorageBackend: "carrier-pigeon"})
	assert.True(t, errors.Is(err, repository.ErrUnknownBackend))

	_, _, err = repository.Open(ctx, &config.Config{StorageBackend: "azure"})
	assert.Error(t, err)

	_, _, err = repository.Open(ctx, &config.Config{StorageBackend: "redis", RedisURL: "://bad"})
	assert.Error(t, err)
}
