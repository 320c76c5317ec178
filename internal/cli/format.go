// Package cli provides the CLI presentation layer for the timers application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"time"

	"github.com/xolan/timers/internal/timer"
)

// ShortIDLength is the number of id characters shown in listings.
// Any unique prefix is accepted wherever an id is expected.
const ShortIDLength = 8

// ShortID returns the first ShortIDLength characters of id.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// FormatTimerStartTime formats the timer start time relative to now.
// Examples: "today at 9:05 AM", "Mon Jan 15 at 9:05 AM"
func FormatTimerStartTime(startedAt, now time.Time) string {
	startedAt = startedAt.In(now.Location())
	startTime := startedAt.Format("3:04 PM")

	isToday := startedAt.Year() == now.Year() &&
		startedAt.Month() == now.Month() &&
		startedAt.Day() == now.Day()

	if isToday {
		return fmt.Sprintf("today at %s", startTime)
	}
	return fmt.Sprintf("%s at %s", startedAt.Format("Mon Jan 2"), startTime)
}

// FormatTimeRange formats the clock times of a timer, e.g. "09:00 - 10:30"
// or "09:00 - running" for the open timer.
func FormatTimeRange(t timer.Timer, loc *time.Location) string {
	from := t.Start.In(loc).Format("15:04")
	if t.End == nil {
		return from + " - running"
	}
	return from + " - " + t.End.In(loc).Format("15:04")
}

// FormatTimerLine formats one timer for listings:
// "[1a2b3c4d] 09:00 - 10:30  1 hour and 30 minutes"
func FormatTimerLine(t timer.Timer, now time.Time, loc *time.Location) string {
	return fmt.Sprintf("[%s] %s  %s",
		ShortID(t.ID),
		FormatTimeRange(t, loc),
		timer.FormatDisplay(timer.DurationSeconds(t, now)))
}
