package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"kanbanboard/internal/model"

	"github.com/spf13/cobra"
)

func newShowCommand(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := app.Store.Board()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(b)
			}
			return printBoard(cmd.OutOrStdout(), b)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the raw board as JSON")
	return cmd
}

func printBoard(w io.Writer, b model.Board) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range b.SortedColumns() {
		tasks := b.TasksIn(col.ID)
		_, _ = fmt.Fprintf(tw, "%s (%s)\t%d\t\n", col.Title, col.ID, len(tasks))
		for _, t := range tasks {
			_, _ = fmt.Fprintf(tw, "  %d\t%s\t%s\n", t.Order, t.ID, t.Title)
		}
	}
	return tw.Flush()
}
