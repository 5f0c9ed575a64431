package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"kanbanboard/internal/model"
)

// SnapshotVersion is the schema version written by this build.
const SnapshotVersion = 1

// DefaultKey is the key the board snapshot lives under.
const DefaultKey = "kanban-storage"

// BlobStore is an opaque key-value store. Load returns nil, nil for a missing key.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type snapshot struct {
	Version int            `json:"version"`
	Columns []model.Column `json:"columns"`
	Tasks   []model.Task   `json:"tasks"`
}

// browserEnvelope is the shape the web client's persist layer writes to
// localStorage; accepted so exported browser state can be imported.
type browserEnvelope struct {
	State *struct {
		Columns []model.Column `json:"columns"`
		Tasks   []model.Task   `json:"tasks"`
	} `json:"state"`
	Version int `json:"version"`
}

// EncodeSnapshot serialises the board with the current schema version.
func EncodeSnapshot(b model.Board) ([]byte, error) {
	s := snapshot{
		Version: SnapshotVersion,
		Columns: b.Columns,
		Tasks:   b.Tasks,
	}
	if s.Columns == nil {
		s.Columns = []model.Column{}
	}
	if s.Tasks == nil {
		s.Tasks = []model.Task{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses either the native snapshot or the browser envelope.
func DecodeSnapshot(data []byte) (model.Board, error) {
	var env browserEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if env.State != nil {
		if env.Version != SnapshotVersion {
			return model.Board{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
		}
		return model.Board{Columns: env.State.Columns, Tasks: env.State.Tasks}, nil
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if s.Version != SnapshotVersion {
		return model.Board{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	return model.Board{Columns: s.Columns, Tasks: s.Tasks}, nil
}

// SnapshotRepository stores the whole board as one versioned blob.
type SnapshotRepository struct {
	blobs BlobStore
	key   string
}

func NewSnapshotRepository(blobs BlobStore, key string) *SnapshotRepository {
	if key == "" {
		key = DefaultKey
	}
	return &SnapshotRepository{blobs: blobs, key: key}
}

// Load returns the stored board, or nil when nothing has been saved yet.
func (r *SnapshotRepository) Load(ctx context.Context) (*model.Board, error) {
	data, err := r.blobs.Load(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.key, err)
	}
	if data == nil {
		return nil, nil
	}
	b, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Save writes the full board.
func (r *SnapshotRepository) Save(ctx context.Context, b model.Board) error {
	data, err := EncodeSnapshot(b)
	if err != nil {
		return err
	}
	if err := r.blobs.Save(ctx, r.key, data); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}
