// Package report folds timers into a Day -> Week -> Year hierarchy.
//
// The hierarchy is rebuilt from the full timer list on every call; nothing is
// cached or updated incrementally. Every timer lands in exactly one Day, so the
// sum of a parent always equals the total of its children.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/xolan/timers/internal/timer"
	"github.com/xolan/timers/internal/timeutil"
)

// Options control how timers are grouped.
type Options struct {
	// Now is used for the live duration of the open timer.
	Now time.Time
	// Location decides which calendar day a timer starts on. Nil means time.Local.
	Location *time.Location
	// WeekStart is the first day of every week.
	WeekStart time.Weekday
	// WeeklyTargetHours enables Week.Shortfall when positive.
	WeeklyTargetHours int
}

// DefaultOptions returns options for local time with weeks starting on Monday.
func DefaultOptions(now time.Time) Options {
	return Options{
		Now:       now,
		Location:  time.Local,
		WeekStart: time.Monday,
	}
}

// Day holds the timers started on one calendar day.
type Day struct {
	Key     string    // YYYY-MM-DD
	Date    time.Time // midnight of the day
	WeekKey string
	Sum     int64 // seconds
	Timers  []timer.Timer
}

// Week holds the days of one week.
type Week struct {
	Key       string    // YYYY-Www
	Number    int       // ISO week number
	WeekStart time.Time // start of the week of the first day folded into it
	YearKey   string
	Sum       int64
	Days      []Day
	// Shortfall is the time left to reach the weekly target.
	// Nil when no target is set or the target was met.
	Shortfall *int64
}

// Year holds the weeks whose start falls in one calendar year.
type Year struct {
	Key            string
	YearStart      time.Time
	Sum            int64
	Weeks          []Week
	AveragePerWeek int64
}

// Build groups timers into years, weeks and days.
// Years, weeks and days are all ordered most recent first, as are the timers of a day.
func Build(timers []timer.Timer, opts Options) []Year {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	sorted := make([]timer.Timer, len(timers))
	copy(sorted, timers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.After(sorted[j].Start)
	})

	days := foldDays(sorted, opts.Now, loc, opts.WeekStart)
	weeks := foldWeeks(days, opts.WeekStart, opts.WeeklyTargetHours)
	years := foldYears(weeks)

	for i := range years {
		y := &years[i]
		if len(y.Weeks) > 0 {
			y.AveragePerWeek = y.Sum / int64(len(y.Weeks))
		}
		sort.SliceStable(y.Weeks, func(a, b int) bool {
			return y.Weeks[a].WeekStart.After(y.Weeks[b].WeekStart)
		})
		for j := range y.Weeks {
			w := &y.Weeks[j]
			sort.SliceStable(w.Days, func(a, b int) bool {
				return w.Days[a].Date.After(w.Days[b].Date)
			})
		}
	}
	sort.SliceStable(years, func(i, j int) bool {
		return years[i].YearStart.After(years[j].YearStart)
	})

	return years
}

func foldDays(timers []timer.Timer, now time.Time, loc *time.Location, weekStart time.Weekday) []Day {
	var days []Day
	index := make(map[string]int)

	for _, t := range timers {
		start := t.Start.In(loc)
		key := timeutil.DayKey(start)

		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, Day{
				Key:     key,
				Date:    timeutil.StartOfDay(start),
				WeekKey: timeutil.WeekKey(start, weekStart),
			})
		}
		days[i].Sum += timer.DurationSeconds(t, now)
		days[i].Timers = append(days[i].Timers, t)
	}
	return days
}

func foldWeeks(days []Day, weekStart time.Weekday, targetHours int) []Week {
	var weeks []Week
	index := make(map[string]int)

	for _, d := range days {
		i, ok := index[d.WeekKey]
		if !ok {
			i = len(weeks)
			index[d.WeekKey] = i
			start := timeutil.StartOfWeek(d.Date, weekStart)
			_, number := timeutil.WeekNumber(d.Date, weekStart)
			weeks = append(weeks, Week{
				Key:       d.WeekKey,
				Number:    number,
				WeekStart: start,
				YearKey:   strconv.Itoa(start.Year()),
			})
		}
		weeks[i].Sum += d.Sum
		weeks[i].Days = append(weeks[i].Days, d)
	}

	if targetHours > 0 {
		target := int64(targetHours) * 3600
		for i := range weeks {
			if missing := target - weeks[i].Sum; missing > 0 {
				weeks[i].Shortfall = &missing
			}
		}
	}
	return weeks
}

func foldYears(weeks []Week) []Year {
	var years []Year
	index := make(map[string]int)

	for _, w := range weeks {
		i, ok := index[w.YearKey]
		if !ok {
			i = len(years)
			index[w.YearKey] = i
			years = append(years, Year{
				Key:       w.YearKey,
				YearStart: timeutil.StartOfYear(w.WeekStart),
			})
		}
		years[i].Sum += w.Sum
		years[i].Weeks = append(years[i].Weeks, w)
	}
	return years
}

// Title returns the short day label, e.g. "15 Jan".
func (d Day) Title() string {
	return d.Date.Format("02 Jan")
}

// Label returns the long day label, e.g. "Mon, Jan 15".
func (d Day) Label() string {
	return d.Date.Format("Mon, Jan 02")
}

// Title returns "Week N".
func (w Week) Title() string {
	return fmt.Sprintf("Week %d", w.Number)
}

// RangeLabel returns the first and last day of the week, e.g. "Jan 15 to Jan 21".
func (w Week) RangeLabel() string {
	return fmt.Sprintf("%s to %s", w.WeekStart.Format("Jan 02"), w.WeekStart.AddDate(0, 0, 6).Format("Jan 02"))
}

// ActiveDays returns the number of days with at least one timer.
func (w Week) ActiveDays() int {
	return len(w.Days)
}

// ActiveDays returns the number of days with at least one timer.
func (y Year) ActiveDays() int {
	n := 0
	for _, w := range y.Weeks {
		n += len(w.Days)
	}
	return n
}

// Total returns the sum of all years.
func Total(years []Year) int64 {
	var sum int64
	for _, y := range years {
		sum += y.Sum
	}
	return sum
}

// FindYear returns the year with the given number, or nil.
func FindYear(years []Year, year int) *Year {
	key := strconv.Itoa(year)
	for i := range years {
		if years[i].Key == key {
			return &years[i]
		}
	}
	return nil
}
