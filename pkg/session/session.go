// Package session persists the bearer token and user profile between runs
// so the app can rehydrate its session at startup.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/masrafi-000/mytaskmanager/pkg/api"
)

const (
	xdgAppName  = "mytaskmanager"
	sessionFile = "session.json"
)

// Session is the persisted credentials: the token and the user profile it
// belongs to.
type Session struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// Valid reports whether the session holds a token.
func (s Session) Valid() bool {
	return s.Token != ""
}

// FileStore keeps the session in a JSON file, created with user-only
// permissions.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the session file location under the user config dir.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName, sessionFile), nil
}

// Load reads the stored session. A missing file is not an error: it yields
// an empty session.
func (s *FileStore) Load() (Session, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, err
	}
	defer f.Close()

	var sess Session
	if err := json.NewDecoder(f).Decode(&sess); err != nil {
		return Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	return sess, nil
}

// Save writes the session, creating the directory if needed.
func (s *FileStore) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open session file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sess)
}

// Clear removes the stored session. Clearing an absent session is fine.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
