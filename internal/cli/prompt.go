package cli

import (
	"errors"
	"fmt"

	"kanbanboard/internal/board"
	"kanbanboard/internal/prompt"

	"github.com/spf13/cobra"
)

func newPromptCommand(app *App) *cobra.Command {
	var opts struct {
		TaskID      string
		Title       string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Generate a coding-assistant prompt for a task",
		Long: `Generate a coding-assistant prompt for a task.

Examples:
  # From a task on the board
  boardctl prompt --task 3f1c...

  # From a free-form title
  boardctl prompt --title "Add dark mode" --description "Follow the OS setting"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := prompt.Request{Title: opts.Title, Description: opts.Description}
			if opts.TaskID != "" {
				task, ok := app.Store.Task(opts.TaskID)
				if !ok {
					return fmt.Errorf("%w: %s", board.ErrTaskNotFound, opts.TaskID)
				}
				req = prompt.Request{Title: task.Title, Description: task.Description}
			}
			if req.Title == "" {
				return errors.New("pass --task or --title")
			}

			text, err := app.Generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.TaskID, "task", "", "Task ID to generate the prompt for")
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	return cmd
}
