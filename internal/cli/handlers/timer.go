package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/timer"
)

// servicesReady reports whether storage could be opened, printing the reason when not.
func servicesReady(deps *cli.Deps) bool {
	if deps.Services != nil {
		return true
	}
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open timer storage")
	if deps.ServicesErr != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", deps.ServicesErr)
	}
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check your config file with 'timers config'")
	deps.Exit(1)
	return false
}

// notice shows a short message through the notifier.
func notice(deps *cli.Deps, message string) {
	if deps.Notifier == nil {
		_, _ = fmt.Fprintln(deps.Stdout, message)
		return
	}
	if err := deps.Notifier.Notify(message); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %v\n", err)
	}
}

// StartTimer starts a new timer at the given time, or now when at is nil
func StartTimer(ctx context.Context, deps *cli.Deps, at *time.Time) {
	if !servicesReady(deps) {
		return
	}

	started, existing, err := deps.Services.Timer.Start(ctx, at)
	if err != nil {
		if errors.Is(err, service.ErrTimerAlreadyRunning) && existing != nil {
			notice(deps, cli.NoticeAlreadyRunning)
			_, _ = fmt.Fprintf(deps.Stderr, "Started: %s\n",
				cli.FormatTimerStartTime(existing.Start, deps.Services.Timer.Now()))
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Stop the current timer with 'timers stop'")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	notice(deps, cli.NoticeStarted)
	_, _ = fmt.Fprintf(deps.Stdout, "Started: %s [%s]\n",
		cli.FormatTimerStartTime(started.Start, deps.Services.Timer.Now()), cli.ShortID(started.ID))
}

// StopTimer stops the running timer at the given time, or now when at is nil
func StopTimer(ctx context.Context, deps *cli.Deps, at *time.Time) {
	if !servicesReady(deps) {
		return
	}

	stopped, err := deps.Services.Timer.Stop(ctx, at)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoTimerRunning):
			notice(deps, cli.NoticeNotRunning)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start a timer with 'timers start'")
		case errors.Is(err, service.ErrEndBeforeStart):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: A timer cannot stop before it started")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	notice(deps, cli.NoticeStopped(timer.DurationSeconds(*stopped, deps.Services.Timer.Now())))
}

// ShowTimerStatus shows the current timer status
func ShowTimerStatus(ctx context.Context, deps *cli.Deps) {
	if !servicesReady(deps) {
		return
	}

	status, err := deps.Services.Timer.Status(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if !status.Running || status.Timer == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No timer running")
		_, _ = fmt.Fprintln(deps.Stdout, "Start a timer with: timers start")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Timer running:")
	_, _ = fmt.Fprintf(deps.Stdout, "  ID:      %s\n", cli.ShortID(status.Timer.ID))
	_, _ = fmt.Fprintf(deps.Stdout, "  Started: %s\n", cli.FormatTimerStartTime(status.Timer.Start, deps.Services.Timer.Now()))
	_, _ = fmt.Fprintf(deps.Stdout, "  Elapsed: %s\n", timer.FormatClock(status.ElapsedTime))
}
