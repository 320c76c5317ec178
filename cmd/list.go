package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List timers grouped by year, week and day",
	Long: `List every timer, most recent first, grouped by year, week and day
with the total time of each group.

Examples:
  timers list
  timers list --year 2024`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := getDeps()
		year, ok := yearFlag(cmd, deps)
		if !ok {
			return
		}
		handlers.ListTimers(cmd.Context(), deps, year)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("year", "", "only show this year (e.g., 2024)")
}
