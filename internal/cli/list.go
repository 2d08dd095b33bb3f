package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks in the order they were added",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := requireTaskSvc()
		if err != nil {
			return err
		}

		tasks := svc.Tasks()
		out := cmd.OutOrStdout()

		if listJSON {
			data, err := json.MarshalIndent(tasks, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting tasks as JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks. Add one with 'todo add <text>'.")
			return nil
		}

		fmt.Fprintf(out, "%s To-Do List\n\n", svc.Theme().Title())
		fmt.Fprintf(out, "  %-4s %-15s %s\n", "#", "ID", "TASK")
		fmt.Fprintf(out, "  %-4s %-15s %s\n", "---", "--", "----")
		for i, t := range tasks {
			fmt.Fprintf(out, "  %-4d %-15d %s\n", i+1, t.ID, t.Text)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output tasks as a JSON array")
	rootCmd.AddCommand(listCmd)
}
