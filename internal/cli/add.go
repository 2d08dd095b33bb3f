package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/todo/internal/core"
)

var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a task",
	Long: `Add a task to the end of the list. All arguments are joined with single
spaces, so quoting is optional. Surrounding whitespace is trimmed; the
result must be between 1 and 200 characters.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := requireTaskSvc()
		if err != nil {
			return err
		}

		task, err := svc.AddTask(strings.Join(args, " "))
		if err != nil {
			var verr *core.ValidationError
			if errors.As(err, &verr) {
				return verr
			}
			return fmt.Errorf("adding task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added task %d\n", task.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
