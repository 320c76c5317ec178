// Package service provides the business logic layer for the timers application.
// It wraps the underlying storage, timer, report, stats and export packages,
// providing a clean API for both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/xolan/timers/internal/report"
	"github.com/xolan/timers/internal/stats"
	"github.com/xolan/timers/internal/timer"
)

// TimerStatus represents the current state of the timer
type TimerStatus struct {
	Running     bool
	Timer       *timer.Timer
	ElapsedTime time.Duration
}

// Snapshot is everything a display cycle needs, read from storage once.
type Snapshot struct {
	Timers  []timer.Timer
	Current *timer.Timer
	Years   []report.Year
	TakenAt time.Time
}

// StatsResult contains statistics for one year or for all years
type StatsResult struct {
	Year       int // 0 for all years
	Period     string
	Statistics stats.Statistics
	Weekly     []stats.WeekTotal
}
