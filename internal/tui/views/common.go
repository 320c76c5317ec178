package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/report"
	"github.com/xolan/timers/internal/timer"
	"github.com/xolan/timers/internal/tui/ui"
)

// listItem is one selectable line of the timers view: a year, week or day
// header, or a single timer below its day.
type listItem struct {
	row   report.Row
	timer *timer.Timer
}

// flatten turns the hierarchy into list items, each day followed by its timers.
func flatten(years []report.Year) []listItem {
	var items []listItem
	for _, row := range report.Rows(years) {
		items = append(items, listItem{row: row})
		if d, ok := row.(report.DayRow); ok {
			for i := range d.Day.Timers {
				items = append(items, listItem{timer: &d.Day.Timers[i]})
			}
		}
	}
	return items
}

// renderItem renders a single list item without selection highlighting.
func renderItem(item listItem, styles ui.Styles, now time.Time, loc *time.Location) string {
	if item.timer != nil {
		t := *item.timer
		return fmt.Sprintf("      %s %s  %s",
			styles.TimerID.Render("["+cli.ShortID(t.ID)+"]"),
			styles.TimerRange.Render(cli.FormatTimeRange(t, loc)),
			styles.Duration.Render(timer.FormatDisplay(timer.DurationSeconds(t, now))))
	}

	switch r := item.row.(type) {
	case report.YearRow:
		return styles.YearRow.Render(r.Year.Key) + "  " +
			styles.Duration.Render(timer.FormatDisplay(r.Year.Sum))
	case report.WeekRow:
		line := "  " + styles.WeekRow.Render(fmt.Sprintf("%s (%s)", r.Week.Title(), r.Week.RangeLabel())) +
			"  " + styles.Duration.Render(timer.FormatDisplay(r.Week.Sum))
		if r.Week.Shortfall != nil {
			line += "  " + styles.Shortfall.Render(fmt.Sprintf("[%s short]", timer.FormatDisplay(*r.Week.Shortfall)))
		}
		return line
	case report.DayRow:
		return "    " + styles.DayRow.Render(r.Day.Title()) + "  " +
			styles.Duration.Render(timer.FormatDisplay(r.Day.Sum))
	}
	return ""
}

// scrollWindow returns the first visible index keeping cursor inside a window of height lines.
func scrollWindow(cursor, offset, height, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	if offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + styles.StatValue.Render(value) + "\n"
}

func divider(width int) string {
	return strings.Repeat("─", clamp(width, 0, 50))
}
