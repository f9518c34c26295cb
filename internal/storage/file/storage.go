// Package file provides a local-filesystem storage backend for processed
// images. It mirrors subdirectories under a single output root.
package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage writes files under a root directory, creating subdirectories as
// needed.
type Storage struct {
	root string
}

// NewStorage creates a Storage rooted at the given directory. The directory
// itself is created lazily on the first Save.
func NewStorage(root string) *Storage {
	return &Storage{root: root}
}

// Root returns the output root directory.
func (s *Storage) Root() string {
	return s.root
}

// Save writes src to <root>/<subdir>/<filename>, creating the directory tree
// if it does not exist. Returns the path of the written file.
func (s *Storage) Save(subdir, filename string, src io.Reader) (string, error) {
	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}
