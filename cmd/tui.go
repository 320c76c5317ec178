package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/notify"
	"github.com/xolan/timers/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"browse"},
	Short:   "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for timers.

The TUI shows the running timer ticking every second and every timer
grouped by year, week and day. Totals refresh every 10 seconds.

Views available:
  - Timers: Browse years, weeks and days; start, stop, edit and delete timers
  - Stats: Weekly and daily averages with a chart of recent weeks
  - Config: View the configuration, pick a theme, toggle notifications

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - s: Start or stop the timer
  - j/k or arrows: Navigate within lists
  - x: Export to ~/Downloads
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI runs the TUI application over the shared services
func runTUI() {
	deps := getDeps()
	if deps.Services == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error initializing services: %v\n", deps.ServicesErr)
		deps.Exit(1)
		return
	}

	// The alternate screen owns stdout, so notices only go to the desktop
	notifier := notify.New(io.Discard, deps.Config.Notifications)
	if err := tui.Run(deps.Services, notifier); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
