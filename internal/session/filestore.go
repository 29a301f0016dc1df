package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore persists the session record as a JSON document on disk. It is
// the durable-storage backend used by default.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted record. A missing or unreadable file counts as
// no session rather than an error, matching lazy session restoration.
func (s *FileStore) Load(context.Context) (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		// corrupt record: treat as absent
		return nil, nil
	}
	if rec.Token == "" {
		return nil, nil
	}
	return rec, nil
}

// Save writes the record atomically via a temp file rename so token and
// user never diverge on disk.
func (s *FileStore) Save(_ context.Context, rec *Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the record file. Clearing an absent record is a no-op.
func (s *FileStore) Clear(context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
