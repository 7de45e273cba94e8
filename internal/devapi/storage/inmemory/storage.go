// Package inmemory provides an in-memory storage for the development story API.
package inmemory

import (
	"context"
	"sync"

	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage"
	storageErrors "github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.Storage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu        sync.RWMutex
	users     map[string]modelstorage.UserEntry
	stories   map[string]modelstorage.StoryEntry
	order     []string
	favorites map[string][]string
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	return &Storage{
		users:     make(map[string]modelstorage.UserEntry),
		stories:   make(map[string]modelstorage.StoryEntry),
		favorites: make(map[string][]string),
	}
}

// CreateUser stores a new user.
func (s *Storage) CreateUser(ctx context.Context, user modelstorage.UserEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return storageErrors.StorageAlreadyExistsError{ID: user.Username}
	}
	s.users[user.Username] = user
	return nil
}

// GetUser retrieves a user by username.
func (s *Storage) GetUser(ctx context.Context, username string) (modelstorage.UserEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return modelstorage.UserEntry{}, storageErrors.StorageNotFoundError{ID: username}
	}
	return user, nil
}

// CreateStory stores a new story.
func (s *Storage) CreateStory(ctx context.Context, story modelstorage.StoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stories[story.StoryID]; ok {
		return storageErrors.StorageAlreadyExistsError{ID: story.StoryID}
	}
	s.stories[story.StoryID] = story
	s.order = append(s.order, story.StoryID)
	return nil
}

// GetStory retrieves a story by ID.
func (s *Storage) GetStory(ctx context.Context, storyID string) (modelstorage.StoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	story, ok := s.stories[storyID]
	if !ok {
		return modelstorage.StoryEntry{}, storageErrors.StorageNotFoundError{ID: storyID}
	}
	return story, nil
}

// ListStories returns a page of stories, newest first.
func (s *Storage) ListStories(ctx context.Context, skip, limit int) ([]modelstorage.StoryEntry, error) {
	if skip < 0 || limit <= 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]modelstorage.StoryEntry, 0, limit)
	for i := len(s.order) - 1 - skip; i >= 0 && len(res) < limit; i-- {
		res = append(res, s.stories[s.order[i]])
	}
	return res, nil
}

// ListStoriesByUser returns the stories posted by a user, newest first.
func (s *Storage) ListStoriesByUser(ctx context.Context, username string) ([]modelstorage.StoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []modelstorage.StoryEntry
	for i := len(s.order) - 1; i >= 0; i-- {
		if story := s.stories[s.order[i]]; story.Username == username {
			res = append(res, story)
		}
	}
	return res, nil
}

// UpdateStory overwrites the mutable fields of a story.
func (s *Storage) UpdateStory(ctx context.Context, story modelstorage.StoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.stories[story.StoryID]
	if !ok {
		return storageErrors.StorageNotFoundError{ID: story.StoryID}
	}
	current.Author = story.Author
	current.Title = story.Title
	current.URL = story.URL
	s.stories[story.StoryID] = current
	return nil
}

// DeleteStory removes a story and every favorite referencing it.
func (s *Storage) DeleteStory(ctx context.Context, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stories[storyID]; !ok {
		return storageErrors.StorageNotFoundError{ID: storyID}
	}
	delete(s.stories, storyID)
	s.order = without(s.order, storyID)
	for username, ids := range s.favorites {
		s.favorites[username] = without(ids, storyID)
	}
	return nil
}

// AddFavorite appends a story to the favorites of a user, adding it twice is a no-op.
func (s *Storage) AddFavorite(ctx context.Context, username, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stories[storyID]; !ok {
		return storageErrors.StorageNotFoundError{ID: storyID}
	}
	for _, id := range s.favorites[username] {
		if id == storyID {
			return nil
		}
	}
	s.favorites[username] = append(s.favorites[username], storyID)
	return nil
}

// RemoveFavorite drops a story from the favorites of a user.
func (s *Storage) RemoveFavorite(ctx context.Context, username, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stories[storyID]; !ok {
		return storageErrors.StorageNotFoundError{ID: storyID}
	}
	s.favorites[username] = without(s.favorites[username], storyID)
	return nil
}

// ListFavorites returns the favorites of a user in the order they were added.
func (s *Storage) ListFavorites(ctx context.Context, username string) ([]modelstorage.StoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []modelstorage.StoryEntry
	for _, id := range s.favorites[username] {
		res = append(res, s.stories[id])
	}
	return res, nil
}

// PingDB is a mock for PSQL DB pinger for in-memory DB handling.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for PSQL DB closer for in-memory DB handling.
func (s *Storage) CloseDB() error {
	return nil
}

func without(ids []string, storyID string) []string {
	res := ids[:0]
	for _, id := range ids {
		if id != storyID {
			res = append(res, id)
		}
	}
	return res
}
