package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each key in its own JSON file inside a directory.
// Every Set rotates up to MaxBackupCount backups of the previous value
// and then replaces the file atomically (write temp file, rename).
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file holding key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the blob for key. Returns ErrNotFound if the file doesn't exist.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, err
	}
	return data, nil
}

// Set overwrites the blob for key.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	path := s.Path(key)
	if err := CreateBackup(path); err != nil {
		return fmt.Errorf("failed to back up %s: %w", path, err)
	}

	return writeAtomic(path, value)
}

// Delete removes the blob for key.
// Returns nil if the file doesn't exist (idempotent operation).
func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op for files.
func (s *FileStore) Close() error {
	return nil
}

// writeAtomic writes data to path via a temporary file and rename.
func writeAtomic(path string, data []byte) error {
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}
