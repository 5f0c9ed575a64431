package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kanbanboard/internal/board"
	"kanbanboard/internal/config"
	"kanbanboard/internal/handler"
	"kanbanboard/internal/middleware"
	"kanbanboard/internal/prompt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine *gin.Engine
	Store  *board.Store
	Config *config.Config

	log          log.FieldLogger
	closeBackend func() error
}

func Init(cfg *config.Config, logger log.FieldLogger) (*Server, error) {
	store, closeBackend, err := board.OpenFromConfig(context.Background(), cfg, board.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("❌ failed to open board storage: %w", err)
	}
	logger.WithField("backend", cfg.StorageBackend).Info("✅ Board storage ready")

	generator := prompt.NewClient(cfg.AnthropicAPIKey,
		prompt.WithBaseURL(cfg.AnthropicBaseURL),
		prompt.WithModel(cfg.AnthropicModel),
	)
	if !generator.Configured() {
		logger.Warn("⚠️  ANTHROPIC_API_KEY is not set, prompt generation is disabled")
	}

	return &Server{
		Engine:       NewRouter(store, generator, logger),
		Store:        store,
		Config:       cfg,
		log:          logger,
		closeBackend: closeBackend,
	}, nil
}

// NewRouter registers every route on a fresh engine.
func NewRouter(store *board.Store, generator handler.Generator, logger log.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(store)
	columnHandler := handler.NewColumnHandler(store)
	taskHandler := handler.NewTaskHandler(store)
	dragHandler := handler.NewDragHandler(store, logger)
	promptHandler := handler.NewPromptHandler(generator, logger)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Board routes
	r.GET("/board", boardHandler.Get)
	r.PUT("/board/tasks", taskHandler.Reorder)

	// Column routes
	r.POST("/columns", columnHandler.Create)
	r.GET("/columns", columnHandler.GetAll)
	r.PUT("/columns/:id", columnHandler.Update)
	r.DELETE("/columns/:id", columnHandler.Delete)
	r.GET("/columns/:id/tasks", columnHandler.GetTasks)

	// Task routes
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)

	r.POST("/drag/over", dragHandler.Over)
	r.POST("/api/generate-prompt", promptHandler.Generate)

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.log.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	if err := s.closeBackend(); err != nil {
		s.log.WithError(err).Warn("⚠️  Failed to close board storage")
	}

	s.log.Info("✅ Server exited properly")
}
