// Package inmemory provides an in-memory story collection store where a storyID-keyed map is the single source
// of story values and the all/own/favorites collections are ordered sets of IDs referencing into it.
package inmemory

import (
	"sync"

	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/storage"
)

// Check interface implementation explicitly
var (
	_ storage.CollectionStore = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu        sync.RWMutex
	username  string
	db        map[string]modelstory.Story
	all       *idSet
	own       *idSet
	favorites *idSet
	// unfavorited remembers the last story toggled out of favorites and its former position
	unfavorited struct {
		storyID  string
		position int
	}
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	st := &Storage{}
	st.reset("")
	return st
}

// Load replaces the whole store content with a server snapshot, a nil user means no one is logged in.
func (s *Storage) Load(stories []modelstory.Story, user *modelstory.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.reset("")
	} else {
		s.reset(user.Username)
	}
	for _, story := range stories {
		s.db[story.StoryID] = story
		s.all.pushBack(story.StoryID)
	}
	if user == nil {
		return
	}
	for _, story := range user.OwnStories {
		if _, ok := s.db[story.StoryID]; !ok {
			s.db[story.StoryID] = story
		}
		s.own.pushBack(story.StoryID)
	}
	for _, story := range user.Favorites {
		if _, ok := s.db[story.StoryID]; !ok {
			s.db[story.StoryID] = story
		}
		s.favorites.pushBack(story.StoryID)
	}
}

// CurrentUsername returns the username the store content belongs to or an empty string.
func (s *Storage) CurrentUsername() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// AddStory puts a story at the front of the global list and, when authored by the current user, of own stories.
func (s *Storage) AddStory(story modelstory.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db[story.StoryID] = story
	s.all.pushFront(story.StoryID)
	if s.username != "" && story.Username == s.username {
		s.own.pushFront(story.StoryID)
	}
}

// RemoveStory removes a story from the global list and own stories, favorites are left untouched.
func (s *Storage) RemoveStory(storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	inAll := s.all.remove(storyID) >= 0
	inOwn := s.own.remove(storyID) >= 0
	s.evict(storyID)
	return inAll || inOwn
}

// UpdateStory overwrites the mutable fields of a story which makes the change visible in every collection.
func (s *Storage) UpdateStory(storyID string, fields modelstory.StoryFields) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	story, ok := s.db[storyID]
	if !ok {
		return false
	}
	story.Apply(fields)
	s.db[storyID] = story
	return true
}

// ToggleFavorite removes a favorited story from favorites or appends it otherwise, returns resulting membership.
// Toggling back the story that was the last one removed puts it at its former position.
func (s *Storage) ToggleFavorite(story modelstory.Story) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos := s.favorites.remove(story.StoryID); pos >= 0 {
		s.evict(story.StoryID)
		s.unfavorited.storyID, s.unfavorited.position = story.StoryID, pos
		return false
	}
	s.keep(story)
	if s.unfavorited.storyID == story.StoryID {
		s.favorites.insertAt(story.StoryID, s.unfavorited.position)
	} else {
		s.favorites.pushBack(story.StoryID)
	}
	s.forgetUnfavorited()
	return true
}

// FavoritePosition returns the position of a story within favorites or -1.
func (s *Storage) FavoritePosition(storyID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites.position(storyID)
}

// RevertFavorite puts favorites back into the state they had before a toggle: position is the story's former
// position as reported by FavoritePosition, negative if it was not a favorite.
func (s *Storage) RevertFavorite(story modelstory.Story, position int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forgetUnfavorited()
	if position < 0 {
		s.favorites.remove(story.StoryID)
		s.evict(story.StoryID)
		return
	}
	s.keep(story)
	s.favorites.insertAt(story.StoryID, position)
}

// Contains reports whether a story is a member of the given collection.
func (s *Storage) Contains(collection storage.Collection, storyID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.set(collection)
	if set == nil {
		return false
	}
	return set.contains(storyID)
}

// Story returns a story referenced by any collection.
func (s *Storage) Story(storyID string) (modelstory.Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	story, ok := s.db[storyID]
	return story, ok
}

// Stories returns a copy of the global list.
func (s *Storage) Stories() []modelstory.Story {
	return s.list(storage.AllStories)
}

// OwnStories returns a copy of the current user's stories.
func (s *Storage) OwnStories() []modelstory.Story {
	return s.list(storage.OwnStories)
}

// Favorites returns a copy of the current user's favorites.
func (s *Storage) Favorites() []modelstory.Story {
	return s.list(storage.Favorites)
}

func (s *Storage) list(collection storage.Collection) []modelstory.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.set(collection)
	stories := make([]modelstory.Story, 0, set.len())
	for _, id := range set.ids {
		stories = append(stories, s.db[id])
	}
	return stories
}

func (s *Storage) set(collection storage.Collection) *idSet {
	switch collection {
	case storage.AllStories:
		return s.all
	case storage.OwnStories:
		return s.own
	case storage.Favorites:
		return s.favorites
	default:
		return nil
	}
}

// keep stores a story value unless the store already references a fresher copy of it.
func (s *Storage) keep(story modelstory.Story) {
	if _, ok := s.db[story.StoryID]; !ok {
		s.db[story.StoryID] = story
	}
}

// evict drops a story value once no collection references it.
func (s *Storage) evict(storyID string) {
	if s.all.contains(storyID) || s.own.contains(storyID) || s.favorites.contains(storyID) {
		return
	}
	delete(s.db, storyID)
}

func (s *Storage) forgetUnfavorited() {
	s.unfavorited.storyID, s.unfavorited.position = "", -1
}

func (s *Storage) reset(username string) {
	s.forgetUnfavorited()
	s.username = username
	s.db = make(map[string]modelstory.Story)
	s.all = newIDSet()
	s.own = newIDSet()
	s.favorites = newIDSet()
}
