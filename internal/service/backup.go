package service

import (
	"errors"

	"github.com/xolan/timers/internal/storage"
	"github.com/xolan/timers/internal/timer"
)

// ErrBackupsUnsupported is returned when the storage backend keeps no backups.
var ErrBackupsUnsupported = errors.New("backups are only kept by the file storage backend")

// BackupService lists and restores backups of the timers blob
type BackupService struct {
	store storage.Store
}

// NewBackupService creates a new BackupService
func NewBackupService(store storage.Store) *BackupService {
	return &BackupService{store: store}
}

func (s *BackupService) fileStore() (*storage.FileStore, error) {
	fs, ok := s.store.(*storage.FileStore)
	if !ok {
		return nil, ErrBackupsUnsupported
	}
	return fs, nil
}

// List returns the available backups, most recent first.
func (s *BackupService) List() ([]storage.BackupInfo, error) {
	fs, err := s.fileStore()
	if err != nil {
		return nil, err
	}
	return fs.Backups(timer.StorageKey), nil
}

// Restore replaces the timers with backup n (1 is the most recent).
func (s *BackupService) Restore(n int) error {
	fs, err := s.fileStore()
	if err != nil {
		return err
	}
	return fs.Restore(timer.StorageKey, n)
}
