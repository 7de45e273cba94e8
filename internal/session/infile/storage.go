// Package infile provides functionality for persisting session credentials to a local file,
// the token is kept ciphered at rest.
package infile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/secretary"
	"github.com/danilovkiri/dk_go_story_feed/internal/session"
)

// Check interface implementation explicitly
var (
	_ session.Persister = (*Storage)(nil)
)

// sessionEntry is the on-disk form of session credentials.
type sessionEntry struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu   sync.Mutex
	path string
	sec  secretary.Secretary
	log  zerolog.Logger
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(cfg *config.Config, sec secretary.Secretary, log zerolog.Logger) (*Storage, error) {
	if sec == nil {
		return nil, errors.New("nil secretary was passed to session storage initializer")
	}
	if cfg.SessionFilePath == "" {
		return nil, errors.New("empty session file path was passed to session storage initializer")
	}
	return &Storage{path: cfg.SessionFilePath, sec: sec, log: log}, nil
}

// Save overwrites the session file with the given credentials.
func (s *Storage) Save(creds session.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := sessionEntry{
		Username: creds.Username,
		Token:    s.sec.Encode(creds.Token),
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	// write to a temporary file first so that a crash never leaves a truncated session behind
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.log.Debug().Str("username", creds.Username).Msg("Session saved")
	return nil
}

// Load reads credentials from the session file, ok is false if no session was saved.
func (s *Storage) Load() (session.Credentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(b) == 0) {
		return session.Credentials{}, false, nil
	}
	if err != nil {
		return session.Credentials{}, false, err
	}
	var entry sessionEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return session.Credentials{}, false, err
	}
	token, err := s.sec.Decode(entry.Token)
	if err != nil {
		return session.Credentials{}, false, err
	}
	s.log.Debug().Str("username", entry.Username).Msg("Session restored")
	return session.Credentials{Username: entry.Username, Token: token}, true, nil
}

// Clear removes the session file.
func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
