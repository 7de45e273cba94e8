// Package app provides the application context owning the story collections, the session and the coordinator.
package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	coordinator "github.com/danilovkiri/dk_go_story_feed/internal/service/coordinator/v1"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/membership"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/session"
	sessionManager "github.com/danilovkiri/dk_go_story_feed/internal/session/v1"
	"github.com/danilovkiri/dk_go_story_feed/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi"
)

// App is created once per process and is passed to everything that reacts to user events.
type App struct {
	Config      *config.Config
	Store       *inmemory.Storage
	Index       *membership.Index
	Session     *sessionManager.Manager
	Coordinator *coordinator.Coordinator
	log         zerolog.Logger
}

// Stats describes the current content of the story collections.
type Stats struct {
	Username  string `json:"username,omitempty"`
	Stories   int    `json:"stories"`
	Own       int    `json:"own"`
	Favorites int    `json:"favorites"`
}

// InitApp initializes an App object and wires its components, persister may be nil.
func InitApp(cfg *config.Config, api storyapi.StoryAPI, auth storyapi.Authenticator, persister session.Persister, log zerolog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config was passed to app initializer")
	}
	store := inmemory.InitStorage()
	index, err := membership.InitIndex(store)
	if err != nil {
		return nil, err
	}
	manager, err := sessionManager.InitManager(auth, persister, cfg, log.With().Str("component", "session").Logger())
	if err != nil {
		return nil, err
	}
	coord, err := coordinator.InitCoordinator(api, store, index, manager, cfg, log.With().Str("component", "coordinator").Logger())
	if err != nil {
		return nil, err
	}
	return &App{
		Config:      cfg,
		Store:       store,
		Index:       index,
		Session:     manager,
		Coordinator: coord,
		log:         log,
	}, nil
}

// Bootstrap restores a persisted session and loads the collections, a session the remote API no longer
// accepts is dropped and the anonymous view is loaded instead.
func (a *App) Bootstrap(ctx context.Context) error {
	restored, err := a.Session.Restore()
	if err != nil {
		a.log.Warn().Err(err).Msg("Bootstrap: session could not be restored")
	}
	err = a.Coordinator.Refresh(ctx)
	if err == nil || !restored {
		return err
	}
	a.log.Warn().Err(err).Msg("Bootstrap: restored session rejected, logging out")
	if err := a.Session.Logout(); err != nil {
		a.log.Warn().Err(err).Msg("Bootstrap: session could not be cleared")
	}
	return a.Coordinator.Refresh(ctx)
}

// Login makes the user current and reloads the collections for them.
func (a *App) Login(ctx context.Context, username, password string) (modelstory.User, error) {
	user, err := a.Session.Login(ctx, username, password)
	if err != nil {
		return modelstory.User{}, err
	}
	a.Coordinator.Adopt(&user)
	return user, a.Coordinator.Refresh(ctx)
}

// Signup creates the user, makes them current and reloads the collections for them.
func (a *App) Signup(ctx context.Context, name, username, password string) (modelstory.User, error) {
	user, err := a.Session.Signup(ctx, name, username, password)
	if err != nil {
		return modelstory.User{}, err
	}
	a.Coordinator.Adopt(&user)
	return user, a.Coordinator.Refresh(ctx)
}

// Logout forgets the current user and reloads the anonymous view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.Session.Logout(); err != nil {
		a.log.Warn().Err(err).Msg("Logout: session could not be cleared")
	}
	a.Coordinator.Adopt(nil)
	return a.Coordinator.Refresh(ctx)
}

// Stats reports the size of every collection.
func (a *App) Stats() Stats {
	return Stats{
		Username:  a.Store.CurrentUsername(),
		Stories:   len(a.Store.Stories()),
		Own:       len(a.Store.OwnStories()),
		Favorites: len(a.Store.Favorites()),
	}
}
