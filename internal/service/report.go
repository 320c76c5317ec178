package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/report"
	"github.com/xolan/timers/internal/timer"
)

// ReportService builds the Day -> Week -> Year hierarchy from stored timers
type ReportService struct {
	repo   timer.Repository
	config config.Config
	now    func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(repo timer.Repository, cfg config.Config, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{repo: repo, config: cfg, now: now}
}

// Options returns the grouping options derived from the configuration, evaluated at now.
func (s *ReportService) Options(now time.Time) (report.Options, error) {
	loc, err := s.config.Location()
	if err != nil {
		return report.Options{}, fmt.Errorf("invalid timezone: %w", err)
	}

	opts := report.Options{
		Now:       now,
		Location:  loc,
		WeekStart: s.config.WeekStart(),
	}
	if hours, ok := s.config.WeeklyTargetHours(); ok {
		opts.WeeklyTargetHours = hours
	}
	return opts, nil
}

// Build reads every timer and groups it into years.
func (s *ReportService) Build(ctx context.Context) ([]report.Year, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Years, nil
}

// Snapshot reads timers once and derives the running timer and the hierarchy from them.
func (s *ReportService) Snapshot(ctx context.Context) (*Snapshot, error) {
	timers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load timers: %w", err)
	}

	current, err := s.repo.FindOpen(ctx, timers)
	if err != nil {
		return nil, err
	}

	now := s.now()
	years, err := s.Rebuild(timers, now)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Timers:  timers,
		Current: current,
		Years:   years,
		TakenAt: now,
	}, nil
}

// Rebuild regroups an already loaded timer list at the given moment without touching storage.
func (s *ReportService) Rebuild(timers []timer.Timer, now time.Time) ([]report.Year, error) {
	opts, err := s.Options(now)
	if err != nil {
		return nil, err
	}
	return report.Build(timers, opts), nil
}

// Now returns the service clock.
func (s *ReportService) Now() time.Time {
	return s.now()
}
