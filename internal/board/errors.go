package board

import "errors"

var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrDuplicateTask  = errors.New("task listed more than once")
	ErrOrderConflict  = errors.New("two tasks share an order within a column")
)
