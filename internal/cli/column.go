package cli

import (
	"fmt"

	"kanbanboard/internal/model"

	"github.com/spf13/cobra"
)

func newColumnCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Add, rename or delete columns",
	}
	cmd.AddCommand(
		newColumnAddCommand(app),
		newColumnRenameCommand(app),
		newColumnDeleteCommand(app),
	)
	return cmd
}

func newColumnAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Add a column at the right end of the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := app.Store.AddColumn(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created column %s: %s\n", col.ID, col.Title)
			return nil
		},
	}
}

func newColumnRenameCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.RenameColumn(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed column %s\n", args[0])
			return nil
		},
	}
}

func newColumnDeleteCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a column together with its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if model.IsDefaultColumn(id) && !force {
				return fmt.Errorf("column %q is a default column; use --force to delete it", id)
			}
			if err := app.Store.DeleteColumn(cmd.Context(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted column %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Allow deleting a default column")
	return cmd
}
