package handler

import (
	"net/http"

	"kanbanboard/internal/model"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	store BoardStore
}

func NewColumnHandler(store BoardStore) *ColumnHandler {
	return &ColumnHandler{store: store}
}

type CreateColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

// Create godoc
// @Summary  Add a column at the right end of the board
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Param    request body CreateColumnRequest true "Column"
// @Success  201 {object} ColumnResponse
// @Failure  400 {object} map[string]string
// @Router   /columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := h.store.AddColumn(c.Request.Context(), req.Title)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newColumnResponse(column))
}

// GetAll godoc
// @Summary  Columns left to right
// @Tags     Columns
// @Produce  json
// @Success  200 {array} ColumnResponse
// @Router   /columns [get]
func (h *ColumnHandler) GetAll(c *gin.Context) {
	columns := h.store.Columns()

	response := make([]ColumnResponse, len(columns))
	for i, column := range columns {
		response[i] = newColumnResponse(column)
	}

	c.JSON(http.StatusOK, response)
}

// Update godoc
// @Summary  Rename a column
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Param    id      path string              true "Column ID"
// @Param    request body UpdateColumnRequest true "New title"
// @Success  200 {object} ColumnResponse
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /columns/{id} [put]
func (h *ColumnHandler) Update(c *gin.Context) {
	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id := c.Param("id")
	if err := h.store.RenameColumn(c.Request.Context(), id, req.Title); err != nil {
		respondStoreError(c, err)
		return
	}

	column, _ := h.store.Column(id)
	c.JSON(http.StatusOK, newColumnResponse(column))
}

// Delete godoc
// @Summary  Delete a column and all of its tasks
// @Tags     Columns
// @Param    id path string true "Column ID"
// @Success  200 {object} map[string]string
// @Failure  403 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if model.IsDefaultColumn(id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Default columns cannot be deleted"})
		return
	}

	if err := h.store.DeleteColumn(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted successfully"})
}

// GetTasks godoc
// @Summary  Tasks of a column in display order
// @Tags     Columns
// @Produce  json
// @Param    id path string true "Column ID"
// @Success  200 {array}  TaskResponse
// @Failure  404 {object} map[string]string
// @Router   /columns/{id}/tasks [get]
func (h *ColumnHandler) GetTasks(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Column(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	c.JSON(http.StatusOK, newTaskResponses(h.store.TasksByColumn(id)))
}
