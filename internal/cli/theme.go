package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the current theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := requireTaskSvc()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), svc.Theme())
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the light and dark theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := requireTaskSvc()
		if err != nil {
			return err
		}
		theme, err := svc.ToggleTheme()
		if err != nil {
			return fmt.Errorf("toggling theme: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s theme\n", theme)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}
