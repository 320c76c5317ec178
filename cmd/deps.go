package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/timeutil"
)

// getDeps returns the dependencies shared by every command.
func getDeps() *cli.Deps {
	return cli.GetDeps()
}

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	cli.SetDeps(d)
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	cli.ResetDeps()
}

// parseAt parses the value of an --at flag in the configured timezone.
// An empty value means now and yields nil. ok is false after an error was reported.
func parseAt(deps *cli.Deps, value string) (at *time.Time, ok bool) {
	if value == "" {
		return nil, true
	}

	loc, err := deps.Config.Location()
	if err != nil {
		loc = time.Local
	}

	now := time.Now()
	if deps.Services != nil {
		now = deps.Services.Timer.Now()
	}

	parsed, err := timeutil.ParseDateTime(value, now, loc)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid --at value")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD HH:MM or HH:MM, e.g., 09:30")
		deps.Exit(1)
		return nil, false
	}
	return &parsed, true
}

// yearFlag reads the --year flag of cmd; 0 means not set.
// ok is false after an error was reported.
func yearFlag(cmd *cobra.Command, deps *cli.Deps) (year int, ok bool) {
	value, _ := cmd.Flags().GetString("year")
	if value == "" {
		return 0, true
	}

	year, err := timeutil.ParseYear(value)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return 0, false
	}
	return year, true
}
