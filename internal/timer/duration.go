package timer

import (
	"fmt"
	"time"
)

// Duration returns the elapsed time of t: End-Start for a stopped timer,
// now-Start for the open one.
func Duration(t Timer, now time.Time) time.Duration {
	if t.End != nil {
		return t.End.Sub(t.Start)
	}
	return now.Sub(t.Start)
}

// DurationSeconds returns the elapsed time of t in whole seconds.
// A timer whose end lies before its start counts as zero.
func DurationSeconds(t Timer, now time.Time) int64 {
	secs := int64(Duration(t, now) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// FormatDisplay formats seconds for people.
// Examples: "0 minutes", "1 minute", "2 hours", "1 hour and 30 minutes"
func FormatDisplay(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours == 0 {
		return pluralize(minutes, "minute")
	}
	if minutes == 0 {
		return pluralize(hours, "hour")
	}
	return fmt.Sprintf("%s and %s", pluralize(hours, "hour"), pluralize(minutes, "minute"))
}

// pluralize adds an "s" for every count except exactly one.
func pluralize(n int64, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// FormatClock formats d as hh:mm:ss. Negative durations render as 00:00:00.
// Hours grow past two digits instead of wrapping.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
