package main

import (
	"fmt"
	"os"

	"github.com/xolan/timers/cmd"
	"github.com/xolan/timers/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run validates the config file and executes the root command, returning the exit code.
func run() int {
	path, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Failed to determine config path: %v\n", err)
		return 1
	}
	if _, err := config.LoadOrDefault(path); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Invalid config file %s\n", path)
		_, _ = fmt.Fprintf(os.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, "Hint: Fix the file or run 'timers config init' after removing it")
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
