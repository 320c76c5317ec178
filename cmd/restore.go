package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
	"github.com/xolan/timers/internal/storage"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore timers from a backup",
	Long: `Restore the timers file from a backup. Every change keeps up to 3 backups.

By default, restores from the most recent backup (1).
The current state is backed up first, so a restore can be undone.
Backups are only kept by the file storage backend.

Examples:
  timers restore       Restore from most recent backup
  timers restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := getDeps()

		backupNum := 1
		if len(args) > 0 {
			num, err := strconv.Atoi(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", args[0])
				deps.Exit(1)
				return
			}
			if num < 1 || num > storage.MaxBackupCount {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup number must be between 1 and %d (got %d)\n", storage.MaxBackupCount, num)
				deps.Exit(1)
				return
			}
			backupNum = num
		}

		handlers.RestoreBackup(deps, backupNum)
	},
}

// backupsCmd represents the backups command
var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List available backups",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListBackups(getDeps())
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(backupsCmd)
}
