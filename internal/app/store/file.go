/*
Package store provides the persistent room store backends.

The store holds the entire room map as one serialized JSON document under a
fixed, versionless key and rewrites it in full on every mutation. This file
implements the file-backed default; postgres.go implements the database-backed
alternative.
*/
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"zazachat/internal/app/chat"
	"zazachat/internal/pkg/logx"
)

// FileStore persists the room map as a single JSON file. Missing or corrupt
// data loads as an empty map; write uses write-then-rename so a crash never
// leaves a half-written document behind.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path. Parent directories are
// created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full room map. A missing file or undecodable content is
// recovered as an empty map, never an error the caller must treat as fatal.
func (f *FileStore) Load() (map[string]*chat.Room, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]*chat.Room), nil
		}
		logx.Warn("Room store file unreadable. Recovering with empty map.", "path", f.path, "error", err)
		return make(map[string]*chat.Room), nil
	}

	rooms := make(map[string]*chat.Room)
	if err := json.Unmarshal(data, &rooms); err != nil {
		logx.Warn("Room store file corrupt. Recovering with empty map.", "path", f.path, "error", err)
		return make(map[string]*chat.Room), nil
	}

	return rooms, nil
}

// SaveAll rewrites the entire room map atomically.
func (f *FileStore) SaveAll(rooms map[string]*chat.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to encode room map: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp store file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	return nil
}
