// Package storyapi provides interfaces for remote story API clients to be in compliance with.
package storyapi

import (
	"context"

	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
)

// StoryLister defines a set of methods for types implementing StoryLister.
type StoryLister interface {
	ListStories(ctx context.Context, skip, limit int) ([]modelstory.Story, error)
}

// StoryCreator defines a set of methods for types implementing StoryCreator.
type StoryCreator interface {
	CreateStory(ctx context.Context, token string, fields modelstory.StoryFields) (modelstory.Story, error)
}

// StoryUpdater defines a set of methods for types implementing StoryUpdater.
type StoryUpdater interface {
	UpdateStory(ctx context.Context, token string, storyID string, fields modelstory.StoryFields) error
}

// StoryDeleter defines a set of methods for types implementing StoryDeleter.
type StoryDeleter interface {
	DeleteStory(ctx context.Context, token string, storyID string) error
}

// FavoriteMarker defines a set of methods for types implementing FavoriteMarker.
type FavoriteMarker interface {
	AddFavorite(ctx context.Context, token string, username string, storyID string) error
	RemoveFavorite(ctx context.Context, token string, username string, storyID string) error
}

// UserGetter defines a set of methods for types implementing UserGetter.
type UserGetter interface {
	GetUser(ctx context.Context, token string, username string) (modelstory.User, error)
}

// StoryAPI defines a set of embedded interfaces for types implementing StoryAPI.
type StoryAPI interface {
	StoryLister
	StoryCreator
	StoryUpdater
	StoryDeleter
	FavoriteMarker
	UserGetter
}

// Authenticator defines a set of methods for types implementing Authenticator.
type Authenticator interface {
	Login(ctx context.Context, username string, password string) (token string, user modelstory.User, err error)
	Signup(ctx context.Context, name string, username string, password string) (token string, user modelstory.User, err error)
}
