package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer",
	Long: `Stop the running timer and show how long it ran.

Examples:
  timers stop
  timers stop --at 17:30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := getDeps()
		atValue, _ := cmd.Flags().GetString("at")
		at, ok := parseAt(deps, atValue)
		if !ok {
			return
		}
		handlers.StopTimer(cmd.Context(), deps, at)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
	stopCmd.Flags().String("at", "", "stop time instead of now (YYYY-MM-DD HH:MM or HH:MM)")
}
