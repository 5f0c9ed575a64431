package main

import (
	_ "kanbanboard/docs"
	"kanbanboard/internal/config"
	"kanbanboard/internal/logging"
	"kanbanboard/internal/server"

	"github.com/gin-gonic/gin"
)

// @title           Kanban Board API
// @version         1.0
// @description     Single-board kanban with drag reconciliation and task prompt generation.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
