// Package storage provides the durable key to JSON document store backing
// the user's collections. The contract mirrors a browser's local storage:
// schemaless, non-transactional, absent keys read as empty.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a flat key to raw JSON document store.
type Store interface {
	// Get returns the stored document for a key, reporting false when the
	// key has never been written.
	Get(key string) ([]byte, bool, error)
	// Set writes a document for a key, replacing any prior value.
	Set(key string, value []byte) error
}

// FileStore persists each key as one JSON file under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &FileStore{dir: dir}, nil
}

func (store *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}

	return filepath.Join(store.dir, key+".json"), nil
}

// Get reads the document for a key.
func (store *FileStore) Get(key string) ([]byte, bool, error) {
	path, err := store.path(key)

	if err != nil {
		return nil, false, err
	}

	content, err := os.ReadFile(path)

	if os.IsNotExist(err) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return content, true, nil
}

// Set writes the document for a key.
func (store *FileStore) Set(key string, value []byte) error {
	path, err := store.path(key)

	if err != nil {
		return err
	}

	return os.WriteFile(path, value, 0o644)
}
