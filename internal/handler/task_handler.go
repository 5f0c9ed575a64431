package handler

import (
	"net/http"

	"kanbanboard/internal/model"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	store BoardStore
}

func NewTaskHandler(store BoardStore) *TaskHandler {
	return &TaskHandler{store: store}
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ColumnID    string `json:"column_id" binding:"required"`
}

// UpdateTaskRequest carries the edit form. Omitted fields stay unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ReorderTaskItem struct {
	ID          string `json:"id" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ColumnID    string `json:"column_id" binding:"required"`
	Order       int    `json:"order"`
	CreatedAt   int64  `json:"created_at"`
}

type ReorderTasksRequest struct {
	Tasks []ReorderTaskItem `json:"tasks" binding:"required,dive"`
}

// Create godoc
// @Summary  Add a task at the end of a column
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    request body CreateTaskRequest true "Task"
// @Success  201 {object} TaskResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.store.AddTask(c.Request.Context(), req.Title, req.Description, req.ColumnID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// GetByID godoc
// @Summary  One task
// @Tags     Tasks
// @Produce  json
// @Param    id path string true "Task ID"
// @Success  200 {object} TaskResponse
// @Failure  404 {object} map[string]string
// @Router   /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, ok := h.store.Task(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Update godoc
// @Summary  Edit a task's title and description
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id      path string            true "Task ID"
// @Param    request body UpdateTaskRequest true "Fields to change"
// @Success  200 {object} TaskResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id := c.Param("id")
	patch := model.TaskPatch{Title: req.Title, Description: req.Description}
	if err := h.store.UpdateTask(c.Request.Context(), id, patch); err != nil {
		respondStoreError(c, err)
		return
	}

	task, _ := h.store.Task(id)
	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete godoc
// @Summary  Delete a task
// @Tags     Tasks
// @Param    id path string true "Task ID"
// @Success  200 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Reorder godoc
// @Summary  Replace the whole task list
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    request body ReorderTasksRequest true "Complete task list"
// @Success  200 {object} BoardResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  409 {object} map[string]string
// @Router   /board/tasks [put]
func (h *TaskHandler) Reorder(c *gin.Context) {
	var req ReorderTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tasks := make([]model.Task, len(req.Tasks))
	for i, item := range req.Tasks {
		tasks[i] = model.Task{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			ColumnID:    item.ColumnID,
			Order:       item.Order,
			CreatedAt:   item.CreatedAt,
		}
	}

	if err := h.store.ReorderTasks(c.Request.Context(), tasks); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(h.store.Board()))
}
