package cli

import (
	"errors"
	"fmt"

	"kanbanboard/internal/model"

	"github.com/spf13/cobra"
)

func newTaskCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add, edit or delete tasks",
	}
	cmd.AddCommand(
		newTaskAddCommand(app),
		newTaskEditCommand(app),
		newTaskDeleteCommand(app),
	)
	return cmd
}

func newTaskAddCommand(app *App) *cobra.Command {
	var opts struct {
		Description string
		Column      string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task at the end of a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Store.AddTask(cmd.Context(), args[0], opts.Description, opts.Column)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Column, "column", "c", model.ColumnTodo, "Column ID")
	return cmd
}

func newTaskEditCommand(app *App) *cobra.Command {
	var opts struct {
		Title       string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags given on the command line are changed
			var patch model.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &opts.Title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &opts.Description
			}
			if patch.IsEmpty() {
				return errors.New("nothing to change: pass --title and/or --description")
			}

			if err := app.Store.UpdateTask(cmd.Context(), args[0], patch); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	return cmd
}

func newTaskDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}
