// Package storage persists processed upload artifacts. The image pipeline
// is handed a Store at construction; there is no shared global upload
// target.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store writes a named artifact and reports the public path clients use to
// fetch it.
type Store interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// LocalStore writes uploads to a directory on disk that the HTTP server
// serves statically.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating upload dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: writing %s: %w", path, err)
	}
	return "/uploads/" + name, nil
}
