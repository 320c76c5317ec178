package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateTimeLayouts are tried in order by ParseDateTime.
var dateTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ParseDateTime parses a point in time given on the command line.
//
// Valid inputs:
//   - "2024-01-15 09:30" (date and time in loc)
//   - "09:30" (today, relative to now, in loc)
//   - "2024-01-15T09:30:00+01:00" (RFC 3339)
//
// Invalid inputs return an error with suggested formats.
func ParseDateTime(input string, now time.Time, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("time cannot be empty (use format YYYY-MM-DD HH:MM or HH:MM, e.g., 2024-01-15 09:30 or 09:30)")
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}

	if t, err := parseClock(input, now.In(loc)); err == nil {
		return t, nil
	}

	return time.Time{}, buildDateTimeParseError(input)
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// parseClock parses HH:MM as a time on the same day as now.
func parseClock(input string, now time.Time) (time.Time, error) {
	matches := clockRe.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, fmt.Errorf("not a clock time: %s", input)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("clock time out of range: %s", input)
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// buildDateTimeParseError creates a helpful error message based on the input pattern
func buildDateTimeParseError(input string) error {
	dateOnlyRe := regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

	switch {
	case dateOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete time '%s': missing time of day (use format YYYY-MM-DD HH:MM, e.g., %s 09:30)", input, input)
	case clockRe.MatchString(input):
		return fmt.Errorf("invalid time of day '%s' (hours 00-23, minutes 00-59)", input)
	default:
		return fmt.Errorf("invalid time format '%s' (use YYYY-MM-DD HH:MM, HH:MM or RFC 3339, e.g., 2024-01-15 09:30)", input)
	}
}

// ParseYear parses a four digit year.
func ParseYear(input string) (int, error) {
	input = strings.TrimSpace(input)
	year, err := strconv.Atoi(input)
	if err != nil || len(input) != 4 || year < 1 {
		return 0, fmt.Errorf("invalid year '%s' (use four digits, e.g., 2024)", input)
	}
	return year, nil
}
