package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage keeps blobs on the local filesystem under a base directory.
// It is the default backend for development.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a filesystem backend rooted at baseDir
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// Upload writes the blob under the base directory and returns its key
func (s *LocalStorage) Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error) {
	key := storageKey(fileID, filename)
	dest := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create shard directory: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write file: %w", err)
	}

	return key, nil
}

// Download opens the blob stored under the given key
func (s *LocalStorage) Download(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.baseDir, filepath.FromSlash(storageKey)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", storageKey)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

// Delete removes the blob; deleting a missing key is not an error
func (s *LocalStorage) Delete(ctx context.Context, storageKey string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(storageKey)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
