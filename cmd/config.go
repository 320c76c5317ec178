package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timers/internal/cli/handlers"
	"github.com/xolan/timers/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for timers.

timers works without any configuration file. All settings have defaults:
  - weekly_target: (not set, no shortfall shown)
  - week_start_day: monday
  - timezone: Local (system timezone)
  - storage_backend: file
  - export_dir: (not set, uses ~/Downloads)
  - notifications: false

Configuration file location:
  ~/.config/timers/config.toml       Linux
  ~/Library/Application Support/timers/config.toml   macOS
  %APPDATA%\timers\config.toml       Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(getDeps())
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(getDeps())
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration setting",
	Long: `Change one configuration setting and save the config file.

Examples:
  timers config set weekly_target 40
  timers config set weekly_target ""
  timers config set week_start_day sunday
  timers config set storage_backend sqlite`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: service.ConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SetConfig(getDeps(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}
