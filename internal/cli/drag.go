package cli

import (
	"fmt"

	"kanbanboard/internal/drag"

	"github.com/spf13/cobra"
)

func newDragCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drag <task-id> [over-id]",
		Short: "Drag a task over another task or a column",
		Long: `Drag a task over another task or a column, as if hovering it there with the
pointer. Hovering over a column or a task in another column moves the task to
the end of that column; hovering over a task in the same column moves it to
that task's position. Without over-id nothing happens.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var overID string
			if len(args) == 2 {
				overID = args[1]
			}

			m, err := app.Store.Drag(cmd.Context(), args[0], overID)
			if err != nil {
				return err
			}

			switch m.Kind {
			case drag.Reassign:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to %s\n", m.TaskID, m.ColumnID)
			case drag.Reorder:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reordered task %s\n", args[0])
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do")
			}
			return nil
		},
	}
}
