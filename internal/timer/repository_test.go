package timer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xolan/timers/internal/storage"
)

// failingStore returns err from every call.
type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, []byte) error    { return f.err }
func (f failingStore) Delete(context.Context, string) error         { return f.err }
func (f failingStore) Close() error                                 { return nil }

var fixedNow = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) (*BlobRepository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	n := 0
	repo := NewBlobRepository(store,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	return repo, store
}

func TestBlobRepository_ListEmpty(t *testing.T) {
	repo, _ := newTestRepository(t)

	timers, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if timers == nil || len(timers) != 0 {
		t.Errorf("List() = %v, expected empty non-nil slice", timers)
	}
}

func TestBlobRepository_ListCorruptBlob(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", "this is not json"},
		{"object instead of array", `{"id":"a"}`},
		{"null", "null"},
		{"truncated", `[{"id":"a","start":"2024-01-15T09:00:00Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, store := newTestRepository(t)
			_ = store.Set(context.Background(), StorageKey, []byte(tt.blob))

			timers, err := repo.List(context.Background())
			if err != nil {
				t.Fatalf("List() returned error: %v", err)
			}
			if len(timers) != 0 {
				t.Errorf("List() = %v, expected empty", timers)
			}
		})
	}
}

func TestBlobRepository_ListStorageError(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := NewBlobRepository(failingStore{err: boom})

	if _, err := repo.List(context.Background()); !errors.Is(err, boom) {
		t.Errorf("List() error = %v, expected %v", err, boom)
	}
	if _, err := repo.Create(context.Background(), nil); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected %v", err, boom)
	}
}

func TestBlobRepository_ReadsISOTimestamps(t *testing.T) {
	repo, store := newTestRepository(t)
	blob := `[
		{"id":"a","start":"2024-01-15T09:00:00.000Z","end":"2024-01-15T10:00:00.000Z"},
		{"id":"b","start":"2024-01-16T09:00:00.000+01:00"}
	]`
	_ = store.Set(context.Background(), StorageKey, []byte(blob))

	timers, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(timers) != 2 {
		t.Fatalf("List() returned %d timers, expected 2", len(timers))
	}
	if got := DurationSeconds(timers[0], fixedNow); got != 3600 {
		t.Errorf("first timer duration = %d, expected 3600", got)
	}
	if !timers[1].IsOpen() {
		t.Error("second timer should be open")
	}
}

func TestBlobRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)

	id, err := repo.Create(ctx, nil)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if id != "id-1" {
		t.Errorf("Create() id = %q, expected id-1", id)
	}

	explicit := fixedNow.Add(-2 * time.Hour)
	if _, err := repo.Create(ctx, &explicit); err != nil {
		t.Fatalf("Create(start) returned error: %v", err)
	}

	timers, _ := repo.List(ctx)
	if len(timers) != 2 {
		t.Fatalf("expected 2 timers, got %d", len(timers))
	}
	if !timers[0].Start.Equal(fixedNow) {
		t.Errorf("first timer start = %v, expected clock time %v", timers[0].Start, fixedNow)
	}
	if !timers[1].Start.Equal(explicit) {
		t.Errorf("second timer start = %v, expected %v", timers[1].Start, explicit)
	}

	// The blob is a JSON array of {id, start} without an end key.
	raw, _ := store.Get(ctx, StorageKey)
	if strings.Contains(string(raw), `"end"`) {
		t.Errorf("open timers should not persist an end field: %s", raw)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("stored blob is not a JSON array: %v", err)
	}
}

func TestBlobRepository_DefaultIDsAreUUIDs(t *testing.T) {
	repo := NewBlobRepository(storage.NewMemoryStore())

	id, err := repo.Create(context.Background(), nil)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Create() id %q is not a UUID: %v", id, err)
	}
}

func TestBlobRepository_FindOpen(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	open, err := repo.FindOpen(ctx, nil)
	if err != nil {
		t.Fatalf("FindOpen() returned error: %v", err)
	}
	if open != nil {
		t.Fatalf("FindOpen() on empty repository = %+v, expected nil", open)
	}

	id, _ := repo.Create(ctx, nil)

	open, err = repo.FindOpen(ctx, nil)
	if err != nil {
		t.Fatalf("FindOpen() returned error: %v", err)
	}
	if open == nil || open.ID != id {
		t.Fatalf("FindOpen() = %+v, expected timer %s", open, id)
	}

	end := fixedNow.Add(time.Hour)
	if _, err := repo.Update(ctx, id, Patch{End: &end}); err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if open, _ := repo.FindOpen(ctx, nil); open != nil {
		t.Errorf("FindOpen() after stop = %+v, expected nil", open)
	}
}

func TestBlobRepository_FindOpenUsesGivenList(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	_, _ = repo.Create(ctx, nil)

	// A pre-fetched list is searched as-is without reading storage.
	closed := []Timer{{ID: "x", Start: fixedNow, End: ptr(fixedNow)}}
	open, err := repo.FindOpen(ctx, closed)
	if err != nil {
		t.Fatalf("FindOpen() returned error: %v", err)
	}
	if open != nil {
		t.Errorf("FindOpen(list) = %+v, expected nil", open)
	}

	withOpen := append(closed, Timer{ID: "y", Start: fixedNow})
	open, _ = repo.FindOpen(ctx, withOpen)
	if open == nil || open.ID != "y" {
		t.Errorf("FindOpen(list) = %+v, expected y", open)
	}
}

func TestBlobRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	id, _ := repo.Create(ctx, nil)

	end := fixedNow.Add(90 * time.Minute)
	updated, err := repo.Update(ctx, id, Patch{End: &end})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if !updated.Start.Equal(fixedNow) {
		t.Errorf("Update() changed start to %v", updated.Start)
	}
	if updated.End == nil || !updated.End.Equal(end) {
		t.Errorf("Update() end = %v, expected %v", updated.End, end)
	}

	newStart := fixedNow.Add(30 * time.Minute)
	updated, err = repo.Update(ctx, id, Patch{Start: &newStart})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if updated.End == nil || !updated.End.Equal(end) {
		t.Errorf("Update(start) should leave end untouched, got %v", updated.End)
	}
	if got := DurationSeconds(updated, fixedNow); got != 3600 {
		t.Errorf("duration after update = %d, expected 3600", got)
	}

	// The returned value is a copy.
	*updated.End = time.Time{}
	timers, _ := repo.List(ctx)
	if !timers[0].End.Equal(end) {
		t.Error("mutating the returned timer changed the repository")
	}
}

func TestBlobRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	_, _ = repo.Create(ctx, nil)

	end := fixedNow
	_, err := repo.Update(ctx, "missing", Patch{End: &end})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, expected ErrNotFound", err)
	}
	if err != nil && !strings.Contains(err.Error(), "missing") {
		t.Errorf("Update(missing) error should name the id, got %v", err)
	}

	if err := repo.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, expected ErrNotFound", err)
	}

	timers, _ := repo.List(ctx)
	if len(timers) != 1 {
		t.Errorf("failed operations changed the repository: %d timers", len(timers))
	}
}

func TestBlobRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	first, _ := repo.Create(ctx, nil)
	second, _ := repo.Create(ctx, nil)
	third, _ := repo.Create(ctx, nil)

	if err := repo.Delete(ctx, second); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}

	timers, _ := repo.List(ctx)
	if len(timers) != 2 {
		t.Fatalf("expected 2 timers after delete, got %d", len(timers))
	}
	if timers[0].ID != first || timers[1].ID != third {
		t.Errorf("remaining ids = %s, %s; expected %s, %s", timers[0].ID, timers[1].ID, first, third)
	}
}

func TestBlobRepository_WorksOverSQLite(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewMemorySQLiteStore()
	if err != nil {
		t.Fatalf("NewMemorySQLiteStore() returned error: %v", err)
	}
	defer func() { _ = store.Close() }()

	repo := NewBlobRepository(store)
	id, err := repo.Create(ctx, nil)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	open, err := repo.FindOpen(ctx, nil)
	if err != nil || open == nil || open.ID != id {
		t.Errorf("FindOpen() = %+v, %v; expected %s", open, err, id)
	}
}
