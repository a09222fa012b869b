// Package session owns the bearer token lifecycle. The store is the sole
// source of truth for "is the user logged in": the token survives process
// restarts through the file-backed store and disappears on logout or on a
// session-expired signal.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zeebo/errs"
)

// Store holds at most one active bearer token.
type Store interface {
	// Token returns the active token, if any.
	Token() (string, bool)
	// Save replaces the active token.
	Save(token string) error
	// Clear removes the active token. Clearing an empty store is not an
	// error.
	Clear() error
}

// FileStore persists the token in a single file so a login outlives the
// process, the same way the browser panel keeps it in local storage.
type FileStore struct {
	Path string

	mu sync.Mutex
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}

	return token, true
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return errs.New("refusing to save an empty token")
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errs.Wrap(err)
		}
	}

	return errs.Wrap(os.WriteFile(s.Path, []byte(token), 0o600))
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err)
	}

	return nil
}

// MemoryStore keeps the token in memory only. Used in tests and anywhere a
// durable session is not wanted.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.set
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return errs.New("refusing to save an empty token")
	}

	s.token = token
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false
	return nil
}
