// Package cli provides the boardctl command-line interface.
package cli

import (
	"context"

	"kanbanboard/internal/board"
	"kanbanboard/internal/prompt"

	"github.com/spf13/cobra"
)

// Generator produces a coding-assistant prompt for a task.
type Generator interface {
	Generate(ctx context.Context, r prompt.Request) (string, error)
}

// App carries the dependencies the commands run against.
type App struct {
	Store     *board.Store
	Generator Generator
}

// NewRootCommand creates the root command for boardctl.
func NewRootCommand(app *App, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "boardctl",
		Short: "Manage the kanban board from the terminal",
		Long: `boardctl reads and edits the same board the server uses.
Storage is selected with STORAGE_BACKEND and friends, exactly as for the server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newShowCommand(app),
		newColumnCommand(app),
		newTaskCommand(app),
		newDragCommand(app),
		newPromptCommand(app),
	)
	return root
}
