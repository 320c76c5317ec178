package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/storage"
)

func TestBackupService_Unsupported(t *testing.T) {
	services, _ := newTestServices(t, config.DefaultConfig())

	if _, err := services.Backup.List(); !errors.Is(err, ErrBackupsUnsupported) {
		t.Errorf("List() error = %v, expected ErrBackupsUnsupported", err)
	}
	if err := services.Backup.Restore(1); !errors.Is(err, ErrBackupsUnsupported) {
		t.Errorf("Restore() error = %v, expected ErrBackupsUnsupported", err)
	}
}

func TestBackupService_ListAndRestore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	now := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	services := NewServicesWithStore(storage.NewFileStore(dir), filepath.Join(dir, "config.toml"), cfg,
		WithClock(func() time.Time { return now }))

	backups, err := services.Backup.List()
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	// Start writes the first blob, Stop backs it up and writes the second.
	if _, _, err := services.Timer.Start(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := services.Timer.Stop(ctx, nil); err != nil {
		t.Fatal(err)
	}

	backups, _ = services.Backup.List()
	if len(backups) != 1 || backups[0].Number != 1 {
		t.Fatalf("backups = %+v, expected one backup numbered 1", backups)
	}

	if err := services.Backup.Restore(1); err != nil {
		t.Fatalf("Restore() returned error: %v", err)
	}

	status, _ := services.Timer.Status(ctx)
	if !status.Running {
		t.Error("restored backup should hold the running timer")
	}

	if err := services.Backup.Restore(3); err == nil {
		t.Error("Restore() of a missing backup should fail")
	}
}
