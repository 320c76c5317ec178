package timer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xolan/timers/internal/storage"
)

// ErrNotFound is returned by Update and Delete for an unknown id.
var ErrNotFound = errors.New("timer not found")

// Repository is the data source for timers.
// Every mutation rewrites the whole collection; callers receive copies.
type Repository interface {
	List(ctx context.Context) ([]Timer, error)
	FindOpen(ctx context.Context, timers []Timer) (*Timer, error)
	Create(ctx context.Context, start *time.Time) (string, error)
	Update(ctx context.Context, id string, patch Patch) (Timer, error)
	Delete(ctx context.Context, id string) error
}

// BlobRepository keeps all timers as a JSON array under StorageKey.
type BlobRepository struct {
	store storage.Store
	now   func() time.Time
	newID func() string
}

// Option configures a BlobRepository.
type Option func(*BlobRepository)

// WithClock replaces time.Now, used for the start of timers created without one.
func WithClock(now func() time.Time) Option {
	return func(r *BlobRepository) {
		r.now = now
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(r *BlobRepository) {
		r.newID = newID
	}
}

// NewBlobRepository returns a repository backed by store.
func NewBlobRepository(store storage.Store, opts ...Option) *BlobRepository {
	r := &BlobRepository{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns every stored timer in stored order.
// A missing or unreadable blob yields an empty list rather than an error;
// only storage failures are reported.
func (r *BlobRepository) List(ctx context.Context) ([]Timer, error) {
	data, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Timer{}, nil
		}
		return nil, fmt.Errorf("failed to read timers: %w", err)
	}

	var timers []Timer
	if err := json.Unmarshal(data, &timers); err != nil || timers == nil {
		return []Timer{}, nil
	}
	return timers, nil
}

// FindOpen returns the timer without an end, or nil if there is none.
// When timers is nil the list is read from storage.
func (r *BlobRepository) FindOpen(ctx context.Context, timers []Timer) (*Timer, error) {
	if timers == nil {
		var err error
		timers, err = r.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	for _, t := range timers {
		if t.IsOpen() {
			open := t.clone()
			return &open, nil
		}
	}
	return nil, nil
}

// Create appends a new open timer starting at start (now when nil) and returns its id.
func (r *BlobRepository) Create(ctx context.Context, start *time.Time) (string, error) {
	timers, err := r.List(ctx)
	if err != nil {
		return "", err
	}

	begin := r.now()
	if start != nil {
		begin = *start
	}

	id := r.newID()
	timers = append(timers, Timer{ID: id, Start: begin})

	if err := r.save(ctx, timers); err != nil {
		return "", err
	}
	return id, nil
}

// Update applies patch to the timer with the given id and returns the result.
func (r *BlobRepository) Update(ctx context.Context, id string, patch Patch) (Timer, error) {
	timers, err := r.List(ctx)
	if err != nil {
		return Timer{}, err
	}

	idx := indexOf(timers, id)
	if idx < 0 {
		return Timer{}, fmt.Errorf("timer with id %s: %w", id, ErrNotFound)
	}

	if patch.Start != nil {
		timers[idx].Start = *patch.Start
	}
	if patch.End != nil {
		end := *patch.End
		timers[idx].End = &end
	}

	if err := r.save(ctx, timers); err != nil {
		return Timer{}, err
	}
	return timers[idx].clone(), nil
}

// Delete removes the timer with the given id.
func (r *BlobRepository) Delete(ctx context.Context, id string) error {
	timers, err := r.List(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(timers, id)
	if idx < 0 {
		return fmt.Errorf("timer with id %s: %w", id, ErrNotFound)
	}

	timers = append(timers[:idx], timers[idx+1:]...)
	return r.save(ctx, timers)
}

func (r *BlobRepository) save(ctx context.Context, timers []Timer) error {
	// Timer holds only JSON-safe types, so Marshal cannot fail
	data, _ := json.Marshal(timers)
	if err := r.store.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to save timers: %w", err)
	}
	return nil
}

func indexOf(timers []Timer, id string) int {
	for i, t := range timers {
		if t.ID == id {
			return i
		}
	}
	return -1
}
