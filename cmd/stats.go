package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show weekly and daily statistics",
	Long: `Show statistics for a year:
  - Number of weeks with timers
  - Average time per week
  - Number of active days
  - Average time per active day
  - Weekly totals of the last weeks

By default, statistics are shown for the current year.

Examples:
  timers stats                 Statistics for this year
  timers stats --year 2023     Statistics for 2023
  timers stats --all           Statistics across all years`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := getDeps()
		year, ok := yearFlag(cmd, deps)
		if !ok {
			return
		}
		all, _ := cmd.Flags().GetBool("all")
		handlers.ShowStats(cmd.Context(), deps, year, all)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().String("year", "", "year to show (e.g., 2024)")
	statsCmd.Flags().Bool("all", false, "show statistics across all years")
	statsCmd.MarkFlagsMutuallyExclusive("year", "all")
}
