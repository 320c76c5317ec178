package service

import (
	"time"

	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/osutil"
	"github.com/xolan/timers/internal/storage"
	"github.com/xolan/timers/internal/timer"
)

// Services holds all service instances used by the application
type Services struct {
	Timer  *TimerService
	Report *ReportService
	Stats  *StatsService
	Export *ExportService
	Backup *BackupService
	Config *ConfigService

	store storage.Store
}

// Option configures NewServicesWithStore.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now in every service.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewServices creates a new Services instance with default paths and the
// storage backend selected in the config file.
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	appDir, err := osutil.AppDir()
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.StorageBackend, appDir)
	if err != nil {
		return nil, err
	}

	return NewServicesWithStore(store, configPath, cfg), nil
}

// NewServicesWithStore creates a new Services instance over the given store (useful for testing)
func NewServicesWithStore(store storage.Store, configPath string, cfg config.Config, opts ...Option) *Services {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	repo := timer.NewBlobRepository(store, timer.WithClock(o.now))

	reportService := NewReportService(repo, cfg, o.now)
	return &Services{
		Timer:  NewTimerService(repo, o.now),
		Report: reportService,
		Stats:  NewStatsService(reportService),
		Export: NewExportService(reportService, cfg, o.now),
		Backup: NewBackupService(store),
		Config: NewConfigService(configPath, cfg),
		store:  store,
	}
}

// Close releases the underlying store.
func (s *Services) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
