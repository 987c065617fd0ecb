// Package storage abstracts the object store that holds uploaded ECU files.
// The backend only needs Put; retrieval happens through the returned URL and
// deletion is intentionally not part of the contract.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Storage interface {
	Put(key string, data []byte, contentType string) (string, error)
}

// DiskStorage keeps objects under a local directory, mirroring the object
// key as a relative path. Used in local mode and in tests; a hosted bucket
// client can replace it behind the same interface.
type DiskStorage struct {
	dir     string
	baseURL string
}

func NewDiskStorage(dir, baseURL string) *DiskStorage {
	if dir == "" {
		dir = "files"
	}
	if baseURL == "" {
		baseURL = "/files"
	}
	return &DiskStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// NewDiskStorageFromEnv builds the store from STORAGE_DIR and
// STORAGE_BASE_URL.
func NewDiskStorageFromEnv() *DiskStorage {
	return NewDiskStorage(os.Getenv("STORAGE_DIR"), os.Getenv("STORAGE_BASE_URL"))
}

func (s *DiskStorage) Put(key string, data []byte, contentType string) (string, error) {
	clean := filepath.Clean("/" + key)
	path := filepath.Join(s.dir, clean)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage put %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage put %s: %w", key, err)
	}

	return s.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(clean), "/"), nil
}
