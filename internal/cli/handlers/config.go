package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/timers/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	if !servicesReady(deps) {
		return
	}
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "weekly_target:   %s\n", orUnset(cfg.WeeklyTarget))
	_, _ = fmt.Fprintf(deps.Stdout, "week_start_day:  %s\n", cfg.WeekStartDay)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:        %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "storage_backend: %s\n", cfg.StorageBackend)
	_, _ = fmt.Fprintf(deps.Stdout, "export_dir:      %s\n", orUnset(cfg.ExportDir))
	_, _ = fmt.Fprintf(deps.Stdout, "notifications:   %t\n", cfg.Notifications)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", orUnset(cfg.Theme))
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if !servicesReady(deps) {
		return
	}
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// SetConfig changes one configuration key and saves the file
func SetConfig(deps *cli.Deps, key, value string) {
	if !servicesReady(deps) {
		return
	}
	if err := deps.Services.Config.Set(key, value); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Set %s = %q in %s\n", strings.ToLower(strings.TrimSpace(key)),
		strings.TrimSpace(value), deps.Services.Config.GetPath())
}
