package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/service"
)

// ListBackups shows the available backups of the timers file
func ListBackups(deps *cli.Deps) {
	if !servicesReady(deps) {
		return
	}

	backups, err := deps.Services.Backup.List()
	if err != nil {
		printBackupError(deps, err)
		deps.Exit(1)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
}

// RestoreBackup replaces the timers with backup n
func RestoreBackup(deps *cli.Deps, n int) {
	if !servicesReady(deps) {
		return
	}

	if err := deps.Services.Backup.Restore(n); err != nil {
		printBackupError(deps, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored timers from backup %d\n", n)
	_, _ = fmt.Fprintln(deps.Stdout, "The previous state was saved as backup 1")
}

func printBackupError(deps *cli.Deps, err error) {
	if errors.Is(err, service.ErrBackupsUnsupported) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set storage_backend = \"file\" in your config file to keep backups")
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
}
