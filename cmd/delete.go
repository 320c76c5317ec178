package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a timer",
	Long: `Delete a timer by its id or a unique prefix of it.
A confirmation prompt will be shown unless --yes is specified.

Example:
  timers delete 1a2b
  timers delete 1a2b --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteTimer(cmd.Context(), getDeps(), args[0], yes)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}
