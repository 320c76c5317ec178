package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the start or end of a timer",
	Long: `Change the start and/or end of a timer.

The id is shown in 'timers list'; any unique prefix of it works.
At least one flag (--start or --end) is required, and the end of
a timer cannot be before its start.

Examples:
  timers edit 1a2b --start 08:45
  timers edit 1a2b --end "2024-01-15 17:30"
  timers edit 1a2b --start 08:45 --end 12:00`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		handlers.EditTimer(cmd.Context(), getDeps(), args[0], start, end)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().String("start", "", "new start time (YYYY-MM-DD HH:MM or HH:MM)")
	editCmd.Flags().String("end", "", "new end time (YYYY-MM-DD HH:MM or HH:MM)")
}
