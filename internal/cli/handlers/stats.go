package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/stats"
	"github.com/xolan/timers/internal/timer"
)

// barWidth is the width of the longest bar in the weekly chart.
const barWidth = 30

// ShowStats shows the statistics of one year, or of all years when all is set.
// A zero year selects the current year.
func ShowStats(ctx context.Context, deps *cli.Deps, year int, all bool) {
	if !servicesReady(deps) {
		return
	}

	var (
		result *service.StatsResult
		err    error
	)
	if all {
		result, err = deps.Services.Stats.Overall(ctx)
	} else {
		if year == 0 {
			year = deps.Services.Timer.Now().Year()
		}
		result, err = deps.Services.Stats.ForYear(ctx, year)
	}
	if err != nil {
		if errors.Is(err, service.ErrYearNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No timers recorded in %d\n", year)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use 'timers stats --all' to see every year")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	displayStats(deps, result)
}

func displayStats(deps *cli.Deps, result *service.StatsResult) {
	s := result.Statistics

	_, _ = fmt.Fprintf(deps.Stdout, "Stats for %s\n", result.Period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Number of weeks:              %d\n", s.NumberOfWeeks)
	_, _ = fmt.Fprintf(deps.Stdout, "Average time per week:        %s\n", timer.FormatDisplay(s.AveragePerWeek))
	_, _ = fmt.Fprintf(deps.Stdout, "Number of active days:        %d\n", s.NumberOfActiveDays)
	_, _ = fmt.Fprintf(deps.Stdout, "Average time per active day:  %s\n", timer.FormatDisplay(s.AveragePerDay))
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:                   %s\n", timer.FormatDisplay(s.Total))
	if _, ok := deps.Services.Config.Get().WeeklyTargetHours(); ok {
		_, _ = fmt.Fprintf(deps.Stdout, "Weeks below target:           %d %s\n",
			s.WeeksBelowTarget, cli.Pluralize("week", s.WeeksBelowTarget))
	}

	if len(result.Weekly) == 0 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Last %d %s:\n", len(result.Weekly), cli.Pluralize("week", len(result.Weekly)))
	for _, line := range weeklyBars(result.Weekly) {
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}
}

// weeklyBars renders one text bar per week, scaled to the longest week.
func weeklyBars(weeks []stats.WeekTotal) []string {
	var longest int64
	for _, w := range weeks {
		if w.Seconds > longest {
			longest = w.Seconds
		}
	}

	lines := make([]string, 0, len(weeks))
	for _, w := range weeks {
		n := 0
		if longest > 0 {
			n = int(w.Seconds * barWidth / longest)
		}
		lines = append(lines, fmt.Sprintf("  %-8s %-*s %s", w.Label, barWidth, strings.Repeat("█", n), timer.FormatDisplay(w.Seconds)))
	}
	return lines
}
