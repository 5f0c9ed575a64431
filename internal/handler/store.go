package handler

import (
	"context"
	"errors"
	"net/http"

	"kanbanboard/internal/board"
	"kanbanboard/internal/model"

	"github.com/gin-gonic/gin"
)

// BoardStore is the part of board.Store the HTTP layer drives.
type BoardStore interface {
	Board() model.Board
	Columns() []model.Column
	TasksByColumn(columnID string) []model.Task
	Column(id string) (model.Column, bool)
	Task(id string) (model.Task, bool)

	AddColumn(ctx context.Context, title string) (model.Column, error)
	RenameColumn(ctx context.Context, id, title string) error
	DeleteColumn(ctx context.Context, id string) error
	AddTask(ctx context.Context, title, description, columnID string) (model.Task, error)
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error
	DeleteTask(ctx context.Context, id string) error
	ReorderTasks(ctx context.Context, tasks []model.Task) error
}

// respondStoreError maps board errors to HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, board.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
	case errors.Is(err, board.ErrColumnNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
	case errors.Is(err, board.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, board.ErrDuplicateTask), errors.Is(err, board.ErrOrderConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
	}
}
