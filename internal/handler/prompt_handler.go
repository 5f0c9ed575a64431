package handler

import (
	"context"
	"errors"
	"net/http"

	"kanbanboard/internal/prompt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Generator produces a coding-assistant prompt for a task.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, r prompt.Request) (string, error)
}

type PromptHandler struct {
	generator Generator
	log       log.FieldLogger
}

func NewPromptHandler(generator Generator, logger log.FieldLogger) *PromptHandler {
	return &PromptHandler{generator: generator, log: logger}
}

type GeneratePromptRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type GeneratePromptResponse struct {
	Prompt string `json:"prompt"`
}

// Generate godoc
// @Summary  Generate a coding-assistant prompt for a task
// @Tags     Prompt
// @Accept   json
// @Produce  json
// @Param    request body GeneratePromptRequest true "Task"
// @Success  200 {object} GeneratePromptResponse
// @Failure  400 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /api/generate-prompt [post]
func (h *PromptHandler) Generate(c *gin.Context) {
	if !h.generator.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": prompt.ErrMissingAPIKey.Error()})
		return
	}

	// Decoded loosely so a non-string title is reported like a missing one.
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error: " + err.Error()})
		return
	}
	title, _ := body["title"].(string)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": prompt.ErrMissingTitle.Error()})
		return
	}
	description, _ := body["description"].(string)

	text, err := h.generator.Generate(c.Request.Context(), prompt.Request{Title: title, Description: description})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeneratePromptResponse{Prompt: text})
}

func (h *PromptHandler) respondError(c *gin.Context, err error) {
	h.log.WithError(err).Error("❌ Error generating prompt")

	var apiErr *prompt.APIError
	switch {
	case errors.Is(err, prompt.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.Is(err, prompt.ErrMissingTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": "API Error: " + apiErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error: " + err.Error()})
	}
}
