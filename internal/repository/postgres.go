package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRow is one stored blob in the board_snapshots table.
type snapshotRow struct {
	ID        string `gorm:"primaryKey"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "board_snapshots"
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the snapshot table if it does not exist yet.
func (r *PostgresStore) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&snapshotRow{})
}

func (r *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var row snapshotRow
	if err := r.db.WithContext(ctx).Where("id = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(row.Payload), nil
}

// Save upserts the blob stored under key.
func (r *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	row := snapshotRow{ID: key, Payload: string(data)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

var _ BlobStore = (*PostgresStore)(nil)
