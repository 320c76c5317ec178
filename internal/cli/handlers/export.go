package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/export"
)

// Export writes every timer to an export file, or to stdout when toStdout is set.
// An empty dir selects the configured export directory.
func Export(ctx context.Context, deps *cli.Deps, formatName, dir string, toStdout bool) {
	if !servicesReady(deps) {
		return
	}

	format, err := export.ParseFormat(formatName)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if toStdout {
		if err := deps.Services.Export.WriteTo(ctx, deps.Stdout, format); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
		}
		return
	}

	path, err := deps.Services.Export.Export(ctx, format, dir)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write export file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Choose another directory with --dir or set export_dir")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Exported timers to %s\n", path)
}
