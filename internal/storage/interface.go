// Package storage provides interfaces for story collection stores to be in compliance with.
package storage

import (
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
)

// Collection names one of the three ordered story collections.
type Collection int

const (
	// AllStories is the global list of known stories, newest first.
	AllStories Collection = iota
	// OwnStories holds stories authored by the current user, newest first.
	OwnStories
	// Favorites holds stories favorited by the current user in the order they were favorited.
	Favorites
)

func (c Collection) String() string {
	switch c {
	case AllStories:
		return "all"
	case OwnStories:
		return "own"
	case Favorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// StoryAdder defines a set of methods for types implementing StoryAdder.
type StoryAdder interface {
	AddStory(story modelstory.Story)
}

// StoryRemover defines a set of methods for types implementing StoryRemover.
type StoryRemover interface {
	RemoveStory(storyID string) (removed bool)
}

// StoryUpdater defines a set of methods for types implementing StoryUpdater.
type StoryUpdater interface {
	UpdateStory(storyID string, fields modelstory.StoryFields) (updated bool)
}

// FavoriteToggler defines a set of methods for types implementing FavoriteToggler.
type FavoriteToggler interface {
	ToggleFavorite(story modelstory.Story) (favorited bool)
	FavoritePosition(storyID string) int
	RevertFavorite(story modelstory.Story, position int)
}

// CollectionReader defines a set of methods for types implementing CollectionReader.
type CollectionReader interface {
	Stories() []modelstory.Story
	OwnStories() []modelstory.Story
	Favorites() []modelstory.Story
	Story(storyID string) (modelstory.Story, bool)
	CurrentUsername() string
}

// MembershipChecker defines a set of methods for types implementing MembershipChecker.
type MembershipChecker interface {
	Contains(collection Collection, storyID string) bool
}

// Loader defines a set of methods for types implementing Loader.
type Loader interface {
	Load(stories []modelstory.Story, user *modelstory.User)
}

// CollectionStore defines a set of embedded interfaces for types implementing CollectionStore.
type CollectionStore interface {
	StoryAdder
	StoryRemover
	StoryUpdater
	FavoriteToggler
	CollectionReader
	MembershipChecker
	Loader
}
