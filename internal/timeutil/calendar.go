package timeutil

import (
	"fmt"
	"time"
)

// DayKeyLayout is the layout of the key timers are grouped by per day.
const DayKeyLayout = "2006-01-02"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns 00:00:00 of the first day of the week containing t,
// where weeks begin on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// EndOfWeek returns the last nanosecond of the week containing t.
func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfYear returns January 1st 00:00:00 of the year of t.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// DayKey returns the calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// WeekNumber returns the ISO year and week of the week containing t.
// The week is identified by its Monday, so a week running Sunday to Saturday
// takes the number of the ISO week it mostly overlaps.
func WeekNumber(t time.Time, weekStart time.Weekday) (year, week int) {
	start := StartOfWeek(t, weekStart)
	toMonday := (int(time.Monday) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, toMonday).ISOWeek()
}

// WeekKey returns the week containing t as YYYY-Www.
func WeekKey(t time.Time, weekStart time.Weekday) string {
	year, week := WeekNumber(t, weekStart)
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive)
func IsInRange(t, start, end time.Time) bool {
	return (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
}
