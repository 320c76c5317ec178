// Package export turns the report hierarchy into files meant for people:
// a nested, labeled JSON document and a flat CSV table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xolan/timers/internal/report"
	"github.com/xolan/timers/internal/timer"
)

const (
	// FilePrefix starts the name of every export file
	FilePrefix = "timers-export-"
	// FileTimeLayout is the timestamp layout used in export file names
	FileTimeLayout = "2006-01-02T15-04-05"
)

// Format selects the export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid export format '%s' (use json or csv)", s)
	}
}

// TimerEntry is one timer in the JSON export.
type TimerEntry struct {
	From     string `json:"from"`
	To       string `json:"to,omitempty"`
	Duration string `json:"duration"`
}

// ToExportable builds the nested export document:
//
//	{"2024": {"sum": "...", "Jan 15 to Jan 21": {"sum": "...",
//	  "Mon, Jan 15": {"sum": "...", "timers": [{"from", "to", "duration"}]}}}}
//
// Keys follow the order of years, weeks and days. now is used for the open timer.
func ToExportable(years []report.Year, now time.Time) *Object {
	root := NewObject()

	for _, y := range years {
		yearObj := NewObject()
		yearObj.Set("sum", timer.FormatDisplay(y.Sum))

		for _, w := range y.Weeks {
			weekObj := NewObject()
			weekObj.Set("sum", timer.FormatDisplay(w.Sum))

			for _, d := range w.Days {
				dayObj := NewObject()
				dayObj.Set("sum", timer.FormatDisplay(d.Sum))

				entries := make([]TimerEntry, 0, len(d.Timers))
				for _, t := range d.Timers {
					entries = append(entries, toEntry(t, now))
				}
				dayObj.Set("timers", entries)
				weekObj.Set(d.Label(), dayObj)
			}
			yearObj.Set(w.RangeLabel(), weekObj)
		}
		root.Set(y.Key, yearObj)
	}

	return root
}

func toEntry(t timer.Timer, now time.Time) TimerEntry {
	e := TimerEntry{
		From:     t.Start.Local().Format(time.RFC3339),
		Duration: timer.FormatDisplay(timer.DurationSeconds(t, now)),
	}
	if t.End != nil {
		e.To = t.End.Local().Format(time.RFC3339)
	}
	return e
}

// FileName returns the export file name for the given moment.
func FileName(now time.Time, format Format) string {
	return FilePrefix + now.Format(FileTimeLayout) + "." + string(format)
}

// WriteJSON writes the pretty-printed export document to w.
func WriteJSON(w io.Writer, years []report.Year, now time.Time) error {
	data, err := json.MarshalIndent(ToExportable(years, now), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// CSVHeader lists the columns of the CSV export.
var CSVHeader = []string{"year", "week", "day", "id", "from", "to", "duration_seconds", "duration"}

// WriteCSV writes one row per timer to w, in report order.
func WriteCSV(w io.Writer, years []report.Year, now time.Time) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, y := range years {
		for _, wk := range y.Weeks {
			for _, d := range wk.Days {
				for _, t := range d.Timers {
					e := toEntry(t, now)
					secs := timer.DurationSeconds(t, now)
					row := []string{y.Key, wk.Key, d.Key, t.ID, e.From, e.To, strconv.FormatInt(secs, 10), e.Duration}
					if err := writer.Write(row); err != nil {
						return fmt.Errorf("write csv row: %w", err)
					}
				}
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// Write creates the export file inside dir and returns its path.
// The directory is created if it does not exist.
func Write(dir string, format Format, years []report.Year, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(now, format))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	switch format {
	case FormatCSV:
		err = WriteCSV(f, years, now)
	default:
		err = WriteJSON(f, years, now)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
