package handler

import (
	"context"
	"net/http"

	"kanbanboard/internal/drag"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type DragHandler struct {
	store DragStore
	log   log.FieldLogger
}

// DragStore is a BoardStore that can reconcile and apply a drag in one step.
type DragStore interface {
	BoardStore
	Drag(ctx context.Context, activeID, overID string) (drag.Mutation, error)
}

func NewDragHandler(store DragStore, logger log.FieldLogger) *DragHandler {
	return &DragHandler{store: store, log: logger}
}

type DragOverRequest struct {
	ActiveID string `json:"active_id" binding:"required"`
	OverID   string `json:"over_id"`
}

type DragOverResponse struct {
	Kind  string        `json:"kind"`
	Board BoardResponse `json:"board"`
}

// Over godoc
// @Summary  Report that the dragged task hovers over a task or column
// @Tags     Drag
// @Accept   json
// @Produce  json
// @Param    request body DragOverRequest true "Drag observation; an empty over_id means over nothing"
// @Success  200 {object} DragOverResponse
// @Failure  400 {object} map[string]string
// @Router   /drag/over [post]
func (h *DragHandler) Over(c *gin.Context) {
	var req DragOverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	m, err := h.store.Drag(c.Request.Context(), req.ActiveID, req.OverID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if m.Kind != drag.None {
		h.log.WithFields(log.Fields{
			"active": req.ActiveID,
			"over":   req.OverID,
			"kind":   m.Kind.String(),
		}).Debug("Drag applied")
	}

	c.JSON(http.StatusOK, DragOverResponse{
		Kind:  m.Kind.String(),
		Board: newBoardResponse(h.store.Board()),
	})
}
