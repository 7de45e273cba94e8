// Package storage provides interfaces for persisting users, stories and favorites of the development story API.
package storage

import (
	"context"

	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/modelstorage"
)

// UserStorage defines a set of methods for types implementing UserStorage.
type UserStorage interface {
	CreateUser(ctx context.Context, user modelstorage.UserEntry) error
	GetUser(ctx context.Context, username string) (modelstorage.UserEntry, error)
}

// StoryGetter defines a set of methods for types implementing StoryGetter.
type StoryGetter interface {
	GetStory(ctx context.Context, storyID string) (modelstorage.StoryEntry, error)
	ListStories(ctx context.Context, skip, limit int) ([]modelstorage.StoryEntry, error)
	ListStoriesByUser(ctx context.Context, username string) ([]modelstorage.StoryEntry, error)
}

// StorySetter defines a set of methods for types implementing StorySetter.
type StorySetter interface {
	CreateStory(ctx context.Context, story modelstorage.StoryEntry) error
	UpdateStory(ctx context.Context, story modelstorage.StoryEntry) error
	DeleteStory(ctx context.Context, storyID string) error
}

// FavoriteStorage defines a set of methods for types implementing FavoriteStorage.
type FavoriteStorage interface {
	AddFavorite(ctx context.Context, username, storyID string) error
	RemoveFavorite(ctx context.Context, username, storyID string) error
	ListFavorites(ctx context.Context, username string) ([]modelstorage.StoryEntry, error)
}

// Storage defines a set of embedded interfaces for types implementing Storage.
type Storage interface {
	UserStorage
	StoryGetter
	StorySetter
	FavoriteStorage
	PingDB() error
	CloseDB() error
}
