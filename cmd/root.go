package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

var rootCmd = &cobra.Command{
	Use:   "timers",
	Short: "A start/stop time tracking CLI application",
	Long: `timers records start/stop timers and shows how much time you spent,
grouped by day, week and year.

Usage:
  timers                          List all timers grouped by year, week and day
  timers start [--at 09:00]       Start a timer
  timers stop [--at 17:30]        Stop the running timer
  timers status                   Show the running timer
  timers stats [--year 2024]      Show weekly and daily averages
  timers export [--format csv]    Export timers to ~/Downloads
  timers tui                      Browse timers interactively

Times accept YYYY-MM-DD HH:MM, HH:MM (today) or RFC 3339.
Timer ids can be shortened to any unique prefix.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		handlers.ListTimers(cmd.Context(), getDeps(), 0)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timers version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	defer ResetDeps()
	return rootCmd.Execute()
}
