// Package service provides the development story API business logic interfaces.
package service

import (
	"context"

	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/modelstorage"
)

// Profile is a user together with the stories they posted and favorited.
type Profile struct {
	User      modelstorage.UserEntry
	Stories   []modelstorage.StoryEntry
	Favorites []modelstorage.StoryEntry
}

// StoryInput holds the mutable part of a story as sent by a client.
type StoryInput struct {
	Author string
	Title  string
	URL    string
}

// Authenticator defines a set of methods for types implementing Authenticator.
type Authenticator interface {
	Signup(ctx context.Context, name, username, password string) (token string, profile Profile, err error)
	Login(ctx context.Context, username, password string) (token string, profile Profile, err error)
}

// StoryProcessor defines a set of methods for types implementing StoryProcessor.
type StoryProcessor interface {
	ListStories(ctx context.Context, skip, limit int) ([]modelstorage.StoryEntry, error)
	GetStory(ctx context.Context, storyID string) (modelstorage.StoryEntry, error)
	CreateStory(ctx context.Context, token string, input StoryInput) (modelstorage.StoryEntry, error)
	UpdateStory(ctx context.Context, token, storyID string, input StoryInput) (modelstorage.StoryEntry, error)
	DeleteStory(ctx context.Context, token, storyID string) (modelstorage.StoryEntry, error)
}

// UserProcessor defines a set of methods for types implementing UserProcessor.
type UserProcessor interface {
	GetProfile(ctx context.Context, token, username string) (Profile, error)
	AddFavorite(ctx context.Context, token, username, storyID string) (Profile, error)
	RemoveFavorite(ctx context.Context, token, username, storyID string) (Profile, error)
}

// Processor defines a set of embedded interfaces for types implementing Processor.
type Processor interface {
	Authenticator
	StoryProcessor
	UserProcessor
	PingDB() error
}
