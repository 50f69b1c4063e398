package tokenstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// storageKey is the single fixed key holding the session token. Absence of
// the key means "not logged in".
const storageKey = "session_token"

// FileStore persists the opaque session token in a local key-value file,
// the device-storage equivalent for this client.
type FileStore struct {
	path string
}

// NewFileStore ensures the parent directory exists and returns a handle.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = filepath.Join(".session", "token.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load returns the persisted token, or ok=false when none is stored. A
// missing or unreadable file is treated as "no token".
func (s *FileStore) Load() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return "", false
	}
	token, ok := values[storageKey]
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Save writes the token under the fixed key, replacing any previous value.
// The write goes through a temp file and rename so readers never observe a
// partially written store.
func (s *FileStore) Save(token string) error {
	data, err := json.Marshal(map[string]string{storageKey: token})
	if err != nil {
		return fmt.Errorf("encode session token: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit session token: %w", err)
	}
	return nil
}

// Clear erases the persisted token. Clearing an already-empty store is not
// an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}
