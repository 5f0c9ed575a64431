package repository_test

import (
	"context"
	"testing"

	"kanbanboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestPostgresStore_Load_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	store := repository.NewPostgresStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "board_snapshots" WHERE id = .* LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload", "updated_at"}).
			AddRow("kanban-storage", `{"version":1}`, "2024-01-01 00:00:00"))

	// Act
	data, err := store.Load(context.Background(), "kanban-storage")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Load_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	store := repository.NewPostgresStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "board_snapshots" WHERE id = .* LIMIT`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	data, err := store.Load(context.Background(), "kanban-storage")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Load_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	store := repository.NewPostgresStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "board_snapshots"`).
		WillReturnError(assert.AnError)

	// Act
	data, err := store.Load(context.Background(), "kanban-storage")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save_Upserts(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	store := repository.NewPostgresStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "board_snapshots" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WithArgs("kanban-storage", `{"version":1}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Act
	err := store.Save(context.Background(), "kanban-storage", []byte(`{"version":1}`))

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
