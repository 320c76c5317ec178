package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export timers to a JSON or CSV file",
	Long: `Export every timer, grouped by year, week and day, to a file named
timers-export-<timestamp>.<format> in your Downloads folder (or export_dir).

Available formats:
  json    Nested document with the sum of every year, week and day
  csv     One row per timer

Examples:
  timers export                     Write a JSON file to ~/Downloads
  timers export --format csv        Write a CSV file
  timers export --dir ./reports     Write into ./reports
  timers export --stdout > t.json   Print instead of writing a file`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		dir, _ := cmd.Flags().GetString("dir")
		toStdout, _ := cmd.Flags().GetBool("stdout")
		handlers.Export(cmd.Context(), getDeps(), format, dir, toStdout)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "json", "export format (json or csv)")
	exportCmd.Flags().String("dir", "", "directory to write the export file to")
	exportCmd.Flags().Bool("stdout", false, "print the export instead of writing a file")
	exportCmd.MarkFlagsMutuallyExclusive("dir", "stdout")
	_ = exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})
}
