package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	store BoardStore
}

func NewBoardHandler(store BoardStore) *BoardHandler {
	return &BoardHandler{store: store}
}

// Get godoc
// @Summary  Whole board
// @Tags     Board
// @Produce  json
// @Success  200 {object} BoardResponse
// @Router   /board [get]
func (h *BoardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, newBoardResponse(h.store.Board()))
}
