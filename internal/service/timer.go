package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xolan/timers/internal/timer"
)

// Timer-specific errors
var (
	ErrTimerAlreadyRunning = errors.New("timer is already running")
	ErrNoTimerRunning      = errors.New("no timer is running")
	ErrEndBeforeStart      = errors.New("end is before start")
	ErrAmbiguousID         = errors.New("id prefix matches more than one timer")
	ErrEmptyPatch          = errors.New("nothing to change")
)

// TimerService provides operations for starting, stopping and editing timers
type TimerService struct {
	repo timer.Repository
	now  func() time.Time
}

// NewTimerService creates a new TimerService
func NewTimerService(repo timer.Repository, now func() time.Time) *TimerService {
	if now == nil {
		now = time.Now
	}
	return &TimerService{repo: repo, now: now}
}

// Start starts a new timer at the given time, or now when at is nil.
// Returns the running timer together with ErrTimerAlreadyRunning if one exists.
func (s *TimerService) Start(ctx context.Context, at *time.Time) (started *timer.Timer, existing *timer.Timer, err error) {
	existing, err = s.repo.FindOpen(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check timer status: %w", err)
	}
	if existing != nil {
		return nil, existing, ErrTimerAlreadyRunning
	}

	start := s.now()
	if at != nil {
		start = *at
	}

	id, err := s.repo.Create(ctx, &start)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save timer: %w", err)
	}

	return &timer.Timer{ID: id, Start: start}, nil, nil
}

// Stop stops the running timer at the given time, or now when at is nil.
func (s *TimerService) Stop(ctx context.Context, at *time.Time) (*timer.Timer, error) {
	open, err := s.repo.FindOpen(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check timer status: %w", err)
	}
	if open == nil {
		return nil, ErrNoTimerRunning
	}

	end := s.now()
	if at != nil {
		end = *at
	}
	if end.Before(open.Start) {
		return nil, fmt.Errorf("%w: timer started %s", ErrEndBeforeStart, open.Start.Format("2006-01-02 15:04"))
	}

	stopped, err := s.repo.Update(ctx, open.ID, timer.Patch{End: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to stop timer: %w", err)
	}
	return &stopped, nil
}

// Status returns the current timer status
func (s *TimerService) Status(ctx context.Context) (*TimerStatus, error) {
	open, err := s.repo.FindOpen(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load timers: %w", err)
	}

	status := &TimerStatus{
		Running: open != nil,
		Timer:   open,
	}
	if open != nil {
		status.ElapsedTime = timer.Duration(*open, s.now())
	}
	return status, nil
}

// List returns all timers, most recent first.
func (s *TimerService) List(ctx context.Context) ([]timer.Timer, error) {
	timers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(timers, func(i, j int) bool {
		return timers[i].Start.After(timers[j].Start)
	})
	return timers, nil
}

// Resolve expands a full id or a unique id prefix into the full id.
func (s *TimerService) Resolve(ctx context.Context, idOrPrefix string) (string, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return "", fmt.Errorf("timer with id %q: %w", idOrPrefix, timer.ErrNotFound)
	}

	timers, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range timers {
		if t.ID == idOrPrefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("timer with id %s: %w", idOrPrefix, timer.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s (%d timers)", ErrAmbiguousID, idOrPrefix, len(matches))
	}
}

// Get returns the timer with the given id or unique id prefix.
func (s *TimerService) Get(ctx context.Context, idOrPrefix string) (timer.Timer, error) {
	id, err := s.Resolve(ctx, idOrPrefix)
	if err != nil {
		return timer.Timer{}, err
	}

	timers, err := s.repo.List(ctx)
	if err != nil {
		return timer.Timer{}, err
	}
	for _, t := range timers {
		if t.ID == id {
			return t, nil
		}
	}
	return timer.Timer{}, fmt.Errorf("timer with id %s: %w", id, timer.ErrNotFound)
}

// Edit changes the start and/or end of a timer.
// The resulting interval must not end before it starts.
func (s *TimerService) Edit(ctx context.Context, idOrPrefix string, patch timer.Patch) (timer.Timer, error) {
	if patch.IsEmpty() {
		return timer.Timer{}, ErrEmptyPatch
	}

	current, err := s.Get(ctx, idOrPrefix)
	if err != nil {
		return timer.Timer{}, err
	}

	start := current.Start
	if patch.Start != nil {
		start = *patch.Start
	}
	end := current.End
	if patch.End != nil {
		end = patch.End
	}
	if end != nil && end.Before(start) {
		return timer.Timer{}, ErrEndBeforeStart
	}

	updated, err := s.repo.Update(ctx, current.ID, patch)
	if err != nil {
		return timer.Timer{}, fmt.Errorf("failed to update timer: %w", err)
	}
	return updated, nil
}

// Delete removes the timer with the given id or unique id prefix and returns it.
func (s *TimerService) Delete(ctx context.Context, idOrPrefix string) (timer.Timer, error) {
	current, err := s.Get(ctx, idOrPrefix)
	if err != nil {
		return timer.Timer{}, err
	}

	if err := s.repo.Delete(ctx, current.ID); err != nil {
		return timer.Timer{}, fmt.Errorf("failed to delete timer: %w", err)
	}
	return current, nil
}

// Now returns the service clock.
func (s *TimerService) Now() time.Time {
	return s.now()
}
