package stats

import (
	"github.com/xolan/timers/internal/report"
)

// Statistics summarizes the weeks and days of one or more years.
// Durations are in seconds.
type Statistics struct {
	NumberOfWeeks      int
	AveragePerWeek     int64
	NumberOfActiveDays int
	AveragePerDay      int64
	Total              int64
	// WeeksBelowTarget counts weeks that carry a shortfall.
	WeeksBelowTarget int
}

// WeekTotal is the total of one week, labeled for charts.
type WeekTotal struct {
	Label   string
	Seconds int64
}

// ForYear computes the statistics of a single year.
func ForYear(year report.Year) Statistics {
	return Overall([]report.Year{year})
}

// Overall computes the statistics across all given years.
// Averages are zero when there is nothing to average over.
func Overall(years []report.Year) Statistics {
	s := Statistics{}

	for _, y := range years {
		for _, w := range y.Weeks {
			s.NumberOfWeeks++
			s.NumberOfActiveDays += len(w.Days)
			s.Total += w.Sum
			if w.Shortfall != nil {
				s.WeeksBelowTarget++
			}
		}
	}

	if s.NumberOfWeeks > 0 {
		s.AveragePerWeek = s.Total / int64(s.NumberOfWeeks)
	}
	if s.NumberOfActiveDays > 0 {
		s.AveragePerDay = s.Total / int64(s.NumberOfActiveDays)
	}

	return s
}

// WeeklyTotals returns the last n weeks of year in chronological order.
// n <= 0 returns every week.
func WeeklyTotals(year report.Year, n int) []WeekTotal {
	weeks := year.Weeks
	if n > 0 && len(weeks) > n {
		weeks = weeks[:n]
	}

	totals := make([]WeekTotal, 0, len(weeks))
	for i := len(weeks) - 1; i >= 0; i-- {
		totals = append(totals, WeekTotal{
			Label:   weeks[i].Title(),
			Seconds: weeks[i].Sum,
		})
	}
	return totals
}
