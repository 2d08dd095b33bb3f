package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a task by id",
	Long: `Remove the task with the given id. Removing an id that is not in the
list is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := requireTaskSvc()
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q: must be an integer", args[0])
		}

		removed, err := svc.RemoveTask(id)
		if err != nil {
			return fmt.Errorf("removing task: %w", err)
		}

		if removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %d\n", id)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No task with id %d\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
