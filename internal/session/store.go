// Package session keeps the CLI's login state on disk so it survives
// restarts.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/avolchek/gamevault/internal/model"
)

const fileName = "session.json"

// Store is a durable single-session store. The zero session means
// "logged out". All methods are safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	cur  *model.Session
}

// DefaultDir resolves the per-user config directory, honoring
// XDG_CONFIG_HOME.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "gamevault")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gamevault")
}

// Open loads the persisted session from dir, if any. A missing or
// unreadable file yields an empty (logged out) store rather than an
// error; corrupt state must never lock the user out of logging in again.
func Open(dir string) (*Store, error) {
	s := &Store{path: filepath.Join(dir, fileName)}

	b, err := os.ReadFile(s.path)
	if err != nil {
		return s, nil
	}
	var sess model.Session
	if err := json.Unmarshal(b, &sess); err != nil || sess.Token == "" {
		return s, nil
	}
	s.cur = &sess
	return s, nil
}

// Get returns the current session. ok is false when logged out.
func (s *Store) Get() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return model.Session{}, false
	}
	return *s.cur, true
}

// Token returns the stored access token, or "" when logged out.
func (s *Store) Token() string {
	sess, ok := s.Get()
	if !ok {
		return ""
	}
	return sess.Token
}

// Set replaces the session and persists it. The file is written via a
// temp file and rename so a crash never leaves a half-written session.
func (s *Store) Set(sess model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session dir: %w", err)
	}
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	s.cur = &sess
	return nil
}

// Clear logs out: it wipes the in-memory session and removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
