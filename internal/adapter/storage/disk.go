// Package storage provides a local-disk object store. Uploaded files are
// served by the HTTP adapter under the configured base URL, which is
// enough for development and single-node deployments.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore implements port.ObjectStore on the local filesystem.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the storage directory if needed. baseURL is the
// public prefix under which dir is served.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload writes data under the store's directory and returns its public
// URL. Path separators in path are honoured; traversal outside the store
// is rejected.
func (s *DiskStore) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	full := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + "/" + filepath.ToSlash(clean), nil
}

// Dir returns the backing directory, for the HTTP file server.
func (s *DiskStore) Dir() string { return s.dir }
