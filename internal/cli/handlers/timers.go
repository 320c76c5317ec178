package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/report"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/timer"
	"github.com/xolan/timers/internal/timeutil"
)

// EmptyListMessage is shown when no timer was ever recorded.
const EmptyListMessage = "There are no timers yet. Start by creating a timer using 'timers start'."

// ListTimers prints the year -> week -> day tree with every timer.
// year limits the output to a single year when non-zero.
func ListTimers(ctx context.Context, deps *cli.Deps, year int) {
	if !servicesReady(deps) {
		return
	}

	snap, err := deps.Services.Report.Snapshot(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(snap.Timers) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, EmptyListMessage)
		return
	}

	years := snap.Years
	if year != 0 {
		y := report.FindYear(years, year)
		if y == nil {
			_, _ = fmt.Fprintf(deps.Stdout, "No timers recorded in %d\n", year)
			return
		}
		years = []report.Year{*y}
	}

	opts, err := deps.Services.Report.Options(snap.TakenAt)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	for _, row := range report.Rows(years) {
		switch r := row.(type) {
		case report.YearRow:
			_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Year.Key, timer.FormatDisplay(r.Year.Sum))
			_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		case report.WeekRow:
			line := fmt.Sprintf("  %s (%s)  %s", r.Week.Title(), r.Week.RangeLabel(), timer.FormatDisplay(r.Week.Sum))
			if r.Week.Shortfall != nil {
				line += fmt.Sprintf("  [%s short]", timer.FormatDisplay(*r.Week.Shortfall))
			}
			_, _ = fmt.Fprintln(deps.Stdout, line)
		case report.DayRow:
			_, _ = fmt.Fprintf(deps.Stdout, "    %s  %s\n", r.Day.Title(), timer.FormatDisplay(r.Day.Sum))
			for _, t := range r.Day.Timers {
				_, _ = fmt.Fprintf(deps.Stdout, "      %s\n", cli.FormatTimerLine(t, snap.TakenAt, opts.Location))
			}
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", timer.FormatDisplay(report.Total(years)))
}

// EditTimer changes the start and/or end of a timer.
// Times accept "YYYY-MM-DD HH:MM", "HH:MM" (today) or RFC 3339.
func EditTimer(ctx context.Context, deps *cli.Deps, id, startStr, endStr string) {
	if !servicesReady(deps) {
		return
	}

	if strings.TrimSpace(startStr) == "" && strings.TrimSpace(endStr) == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag (--start or --end) is required")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
		_, _ = fmt.Fprintln(deps.Stderr, "  timers edit <id> --start '2024-01-15 09:00'")
		_, _ = fmt.Fprintln(deps.Stderr, "  timers edit <id> --end 17:30")
		deps.Exit(1)
		return
	}

	now := deps.Services.Timer.Now()
	opts, err := deps.Services.Report.Options(now)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	var patch timer.Patch
	for _, field := range []struct {
		name  string
		input string
		dst   **time.Time
	}{
		{"start", startStr, &patch.Start},
		{"end", endStr, &patch.End},
	} {
		if strings.TrimSpace(field.input) == "" {
			continue
		}
		parsed, err := timeutil.ParseDateTime(field.input, now, opts.Location)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --%s value\n", field.name)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
		*field.dst = &parsed
	}

	updated, err := deps.Services.Timer.Edit(ctx, id, patch)
	if err != nil {
		printTimerLookupError(deps, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated timer: %s\n", cli.FormatTimerLine(updated, now, opts.Location))
}

// DeleteTimer deletes a timer with optional confirmation
func DeleteTimer(ctx context.Context, deps *cli.Deps, id string, skipConfirm bool) {
	if !servicesReady(deps) {
		return
	}

	t, err := deps.Services.Timer.Get(ctx, id)
	if err != nil {
		printTimerLookupError(deps, err)
		deps.Exit(1)
		return
	}

	now := deps.Services.Timer.Now()
	opts, err := deps.Services.Report.Options(now)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Timer to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s  %s\n", t.Start.In(opts.Location).Format("2006-01-02"), cli.FormatTimerLine(t, now, opts.Location))

	if !skipConfirm {
		if !promptConfirmation(deps.Stdout, deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	deleted, err := deps.Services.Timer.Delete(ctx, t.ID)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted timer %s (%s)\n",
		cli.ShortID(deleted.ID), timer.FormatDisplay(timer.DurationSeconds(deleted, now)))
	_, _ = fmt.Fprintln(deps.Stdout, "Tip: Use 'timers restore' to bring back the previous state if needed")
}

func printTimerLookupError(deps *cli.Deps, err error) {
	switch {
	case errors.Is(err, timer.ErrNotFound):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List timers with 'timers list' to see their ids")
	case errors.Is(err, service.ErrAmbiguousID):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use more characters of the id")
	case errors.Is(err, service.ErrEndBeforeStart):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: The end of a timer cannot be before its start")
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	}
}

// promptConfirmation asks the user to confirm deletion
func promptConfirmation(stdout io.Writer, stdin io.Reader) bool {
	_, _ = fmt.Fprint(stdout, "Delete this timer? [y/N]: ")

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
