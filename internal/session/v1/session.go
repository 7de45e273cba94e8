// Package session provides the session manager that logs users in and out of the remote story API.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/session"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi"
)

// Check interface implementation explicitly
var (
	_ session.Provider = (*Manager)(nil)
)

// Manager holds the credentials of the current user.
type Manager struct {
	mu        sync.RWMutex
	current   *session.Credentials
	auth      storyapi.Authenticator
	persister session.Persister
	timeout   time.Duration
	log       zerolog.Logger
}

// InitManager initializes a Manager object and sets its attributes, persister may be nil to keep sessions in memory.
func InitManager(auth storyapi.Authenticator, persister session.Persister, cfg *config.Config, log zerolog.Logger) (*Manager, error) {
	if auth == nil {
		return nil, &serviceErrors.ServiceFoundNilAPI{Msg: "nil authenticator was passed to session manager initializer"}
	}
	return &Manager{
		auth:      auth,
		persister: persister,
		timeout:   cfg.RequestTimeout,
		log:       log,
	}, nil
}

// Current returns the credentials of the logged-in user.
func (m *Manager) Current() (session.Credentials, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return session.Credentials{}, false
	}
	return *m.current, true
}

// Login authenticates a user and makes them current.
func (m *Manager) Login(ctx context.Context, username, password string) (modelstory.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return modelstory.User{}, err
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	token, user, err := m.auth.Login(ctx, username, password)
	if err != nil {
		m.log.Warn().Err(err).Str("username", username).Msg("Login failed")
		return modelstory.User{}, storyapi.NewRemoteError("login", err)
	}
	m.set(session.Credentials{Username: user.Username, Token: token})
	m.log.Info().Str("username", user.Username).Msg("Logged in")
	return user, nil
}

// Signup creates a user and makes them current.
func (m *Manager) Signup(ctx context.Context, name, username, password string) (modelstory.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return modelstory.User{}, err
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	token, user, err := m.auth.Signup(ctx, name, username, password)
	if err != nil {
		m.log.Warn().Err(err).Str("username", username).Msg("Signup failed")
		return modelstory.User{}, storyapi.NewRemoteError("signup", err)
	}
	m.set(session.Credentials{Username: user.Username, Token: token})
	m.log.Info().Str("username", user.Username).Msg("Signed up")
	return user, nil
}

// Restore makes the persisted credentials current, it reports whether a session was found.
func (m *Manager) Restore() (bool, error) {
	if m.persister == nil {
		return false, nil
	}
	creds, ok, err := m.persister.Load()
	if err != nil || !ok {
		return false, err
	}
	m.mu.Lock()
	m.current = &creds
	m.mu.Unlock()
	m.log.Info().Str("username", creds.Username).Msg("Session restored")
	return true, nil
}

// Logout forgets the current user.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	if m.persister == nil {
		return nil
	}
	return m.persister.Clear()
}

func (m *Manager) set(creds session.Credentials) {
	m.mu.Lock()
	m.current = &creds
	m.mu.Unlock()
	if m.persister == nil {
		return
	}
	// the session stays usable in memory even if it could not be saved
	if err := m.persister.Save(creds); err != nil {
		m.log.Warn().Err(err).Msg("Session could not be saved")
	}
}

func (m *Manager) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.timeout)
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &serviceErrors.ValidationError{Field: "username", Msg: "username must not be empty"}
	}
	if password == "" {
		return &serviceErrors.ValidationError{Field: "password", Msg: "password must not be empty"}
	}
	return nil
}
