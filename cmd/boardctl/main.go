// Package main is the entry point for the boardctl CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"kanbanboard/internal/board"
	"kanbanboard/internal/cli"
	"kanbanboard/internal/config"
	"kanbanboard/internal/logging"
	"kanbanboard/internal/prompt"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	store, closeBackend, err := board.OpenFromConfig(ctx, cfg, board.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = closeBackend() }()

	app := &cli.App{
		Store: store,
		Generator: prompt.NewClient(cfg.AnthropicAPIKey,
			prompt.WithBaseURL(cfg.AnthropicBaseURL),
			prompt.WithModel(cfg.AnthropicModel),
		),
	}
	return cli.NewRootCommand(app, version).ExecuteContext(ctx)
}
