package cli

import (
	"path/filepath"
	"testing"

	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/storage"
)

func newMemoryServices(t *testing.T) *service.Services {
	t.Helper()
	services := service.NewServicesWithStore(storage.NewMemoryStore(),
		filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())
	t.Cleanup(func() { _ = services.Close() })
	return services
}

func TestNewDeps(t *testing.T) {
	cfg := config.DefaultConfig()
	services := newMemoryServices(t)

	deps := NewDeps(services, cfg)
	if deps == nil {
		t.Fatal("expected non-nil deps")
	}
	if deps.Services != services {
		t.Error("expected services to match")
	}
	if deps.Stdout == nil {
		t.Error("expected non-nil Stdout")
	}
	if deps.Stderr == nil {
		t.Error("expected non-nil Stderr")
	}
	if deps.Stdin == nil {
		t.Error("expected non-nil Stdin")
	}
	if deps.Exit == nil {
		t.Error("expected non-nil Exit")
	}
	if deps.Notifier == nil {
		t.Error("expected non-nil Notifier")
	}
}

func TestSetDeps(t *testing.T) {
	original := deps
	defer SetDeps(original)

	newDeps := NewDeps(newMemoryServices(t), config.DefaultConfig())
	SetDeps(newDeps)

	if GetDeps() != newDeps {
		t.Error("expected GetDeps to return the deps that were set")
	}
}

func TestResetDeps(t *testing.T) {
	original := deps
	defer SetDeps(original)

	SetDeps(NewDeps(newMemoryServices(t), config.DefaultConfig()))
	ResetDeps()

	if deps != nil {
		t.Error("expected ResetDeps to clear the global deps")
	}
}
