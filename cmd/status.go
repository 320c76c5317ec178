package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of the current timer",
	Long: `Show the running timer with its start time and the elapsed time (hh:mm:ss).
If no timer is running, displays a message indicating that.

Examples:
  timers status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowTimerStatus(cmd.Context(), getDeps())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
