package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a timer",
	Long: `Start a new timer. Only one timer can run at a time.
The timer keeps running across terminal sessions until you stop it.

Examples:
  timers start
  timers start --at 09:15
  timers start --at "2024-01-15 09:15"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := getDeps()
		atValue, _ := cmd.Flags().GetString("at")
		at, ok := parseAt(deps, atValue)
		if !ok {
			return
		}
		handlers.StartTimer(cmd.Context(), deps, at)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().String("at", "", "start time instead of now (YYYY-MM-DD HH:MM or HH:MM)")
}
