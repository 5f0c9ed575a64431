package board

import (
	"context"
	"fmt"

	"kanbanboard/internal/config"
	"kanbanboard/internal/repository"
)

// OpenFromConfig connects the configured storage backend and opens the board
// on it. The returned close function releases the backend.
func OpenFromConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Store, func() error, error) {
	blobs, closeBackend, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := Open(ctx, repository.NewSnapshotRepository(blobs, cfg.StorageKey), opts...)
	if err != nil {
		_ = closeBackend()
		return nil, nil, fmt.Errorf("load board: %w", err)
	}
	return store, closeBackend, nil
}
