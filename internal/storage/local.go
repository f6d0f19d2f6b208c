package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes images into a directory that is served statically
// under /uploads.
type LocalStore struct {
	Dir string
}

func NewLocal(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory, %w", err)
	}

	return &LocalStore{Dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, name, _ string, r io.Reader) (string, error) {
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file, %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write image file, %w", err)
	}

	return "/uploads/" + name, nil
}
