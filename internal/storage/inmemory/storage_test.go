package inmemory

import (
	"fmt"
	"testing"

	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStory(id, username string) modelstory.Story {
	return modelstory.Story{
		StoryID:  id,
		Author:   "author of " + id,
		Title:    "title of " + id,
		URL:      "http://" + id + ".com",
		Username: username,
	}
}

func storyIDs(stories []modelstory.Story) []string {
	ids := make([]string, 0, len(stories))
	for _, s := range stories {
		ids = append(ids, s.StoryID)
	}
	return ids
}

func loggedInStorage(username string) *Storage {
	st := InitStorage()
	st.Load(nil, &modelstory.User{Username: username})
	return st
}

// Tests

func TestAddStory(t *testing.T) {
	st := loggedInStorage("ann")
	st.AddStory(newStory("s1", "ann"))
	st.AddStory(newStory("s2", "bob"))
	st.AddStory(newStory("s3", "ann"))
	assert.Equal(t, []string{"s3", "s2", "s1"}, storyIDs(st.Stories()))
	assert.Equal(t, []string{"s3", "s1"}, storyIDs(st.OwnStories()))
	assert.Empty(t, st.Favorites())
}

func TestAddStory_LoggedOut(t *testing.T) {
	st := InitStorage()
	st.AddStory(newStory("s1", ""))
	assert.Equal(t, []string{"s1"}, storyIDs(st.Stories()))
	assert.Empty(t, st.OwnStories())
}

func TestAddStory_Submit(t *testing.T) {
	st := loggedInStorage("ann")
	st.AddStory(modelstory.Story{StoryID: "s1", Author: "Ann", Title: "T", URL: "http://x.com", Username: "ann"})
	require.NotEmpty(t, st.Stories())
	require.NotEmpty(t, st.OwnStories())
	assert.Equal(t, "s1", st.Stories()[0].StoryID)
	assert.Equal(t, "s1", st.OwnStories()[0].StoryID)
}

func TestRemoveStory(t *testing.T) {
	st := loggedInStorage("ann")
	st.AddStory(newStory("s1", "ann"))
	st.AddStory(newStory("s2", "ann"))
	assert.True(t, st.RemoveStory("s1"))
	assert.Equal(t, []string{"s2"}, storyIDs(st.Stories()))
	assert.Equal(t, []string{"s2"}, storyIDs(st.OwnStories()))
	_, ok := st.Story("s1")
	assert.False(t, ok)
}

func TestRemoveStory_Idempotent(t *testing.T) {
	st := loggedInStorage("ann")
	st.AddStory(newStory("s1", "ann"))
	st.AddStory(newStory("s2", "ann"))
	st.RemoveStory("s1")
	stories, own, favorites := st.Stories(), st.OwnStories(), st.Favorites()
	assert.False(t, st.RemoveStory("s1"))
	assert.Equal(t, stories, st.Stories())
	assert.Equal(t, own, st.OwnStories())
	assert.Equal(t, favorites, st.Favorites())
}

func TestRemoveStory_KeepsFavorites(t *testing.T) {
	st := loggedInStorage("ann")
	s := newStory("s1", "ann")
	st.AddStory(s)
	st.ToggleFavorite(s)
	st.RemoveStory("s1")
	assert.Empty(t, st.Stories())
	assert.Empty(t, st.OwnStories())
	assert.Equal(t, []string{"s1"}, storyIDs(st.Favorites()))
	_, ok := st.Story("s1")
	assert.True(t, ok)
}

func TestUpdateStory_Propagation(t *testing.T) {
	st := loggedInStorage("ann")
	s1 := newStory("s1", "ann")
	s2 := newStory("s2", "ann")
	st.AddStory(s1)
	st.AddStory(s2)
	st.ToggleFavorite(s1)
	st.ToggleFavorite(s2)
	fields := modelstory.StoryFields{Author: "Bob", Title: "New title", URL: "http://new.com"}
	assert.True(t, st.UpdateStory("s1", fields))

	for _, collection := range [][]modelstory.Story{st.Stories(), st.OwnStories(), st.Favorites()} {
		for _, s := range collection {
			switch s.StoryID {
			case "s1":
				assert.Equal(t, fields, s.Fields())
				assert.Equal(t, "ann", s.Username)
			case "s2":
				assert.Equal(t, s2.Fields(), s.Fields())
			}
		}
	}
	assert.Equal(t, []string{"s2", "s1"}, storyIDs(st.Stories()))
	assert.Equal(t, []string{"s2", "s1"}, storyIDs(st.OwnStories()))
	assert.Equal(t, []string{"s1", "s2"}, storyIDs(st.Favorites()))
}

func TestUpdateStory_NotFound(t *testing.T) {
	st := loggedInStorage("ann")
	st.AddStory(newStory("s1", "ann"))
	assert.False(t, st.UpdateStory("s2", modelstory.StoryFields{Title: "x"}))
	_, ok := st.Story("s2")
	assert.False(t, ok)
}

func TestToggleFavorite(t *testing.T) {
	st := loggedInStorage("ann")
	s1, s2 := newStory("s1", "bob"), newStory("s2", "bob")
	st.AddStory(s1)
	st.AddStory(s2)
	assert.True(t, st.ToggleFavorite(s1))
	assert.True(t, st.ToggleFavorite(s2))
	assert.Equal(t, []string{"s1", "s2"}, storyIDs(st.Favorites()))
	assert.True(t, st.Contains(storage.Favorites, "s1"))
	assert.False(t, st.ToggleFavorite(s1))
	assert.Equal(t, []string{"s2"}, storyIDs(st.Favorites()))
	assert.False(t, st.Contains(storage.Favorites, "s1"))
}

func TestToggleFavorite_Symmetry(t *testing.T) {
	st := loggedInStorage("ann")
	for i := 0; i < 3; i++ {
		s := newStory(fmt.Sprintf("s%d", i), "bob")
		st.AddStory(s)
		st.ToggleFavorite(s)
	}
	before := st.Favorites()
	s := newStory("s9", "bob")
	st.ToggleFavorite(s)
	st.ToggleFavorite(s)
	assert.Equal(t, before, st.Favorites())
	_, ok := st.Story("s9")
	assert.False(t, ok)
}

func TestToggleFavorite_SymmetryFavorited(t *testing.T) {
	tests := []struct {
		name    string
		storyID string
	}{
		{name: "first", storyID: "s0"},
		{name: "middle", storyID: "s1"},
		{name: "last", storyID: "s2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := loggedInStorage("ann")
			stories := make(map[string]modelstory.Story)
			for i := 0; i < 3; i++ {
				s := newStory(fmt.Sprintf("s%d", i), "bob")
				stories[s.StoryID] = s
				st.AddStory(s)
				st.ToggleFavorite(s)
			}
			before := st.Favorites()
			assert.False(t, st.ToggleFavorite(stories[tt.storyID]))
			assert.True(t, st.ToggleFavorite(stories[tt.storyID]))
			assert.Equal(t, before, st.Favorites())
		})
	}
}

func TestToggleFavorite_ReaddAfterOtherChange(t *testing.T) {
	st := loggedInStorage("ann")
	var stories []modelstory.Story
	for i := 0; i < 3; i++ {
		s := newStory(fmt.Sprintf("s%d", i), "bob")
		stories = append(stories, s)
		st.AddStory(s)
		st.ToggleFavorite(s)
	}
	assert.False(t, st.ToggleFavorite(stories[0]))
	assert.False(t, st.ToggleFavorite(stories[2]))
	// s0 is no longer the most recent removal and goes to the end
	assert.True(t, st.ToggleFavorite(stories[0]))
	assert.Equal(t, []string{"s1", "s0"}, storyIDs(st.Favorites()))
}

func TestRevertFavorite(t *testing.T) {
	st := loggedInStorage("ann")
	var stories []modelstory.Story
	for i := 0; i < 3; i++ {
		s := newStory(fmt.Sprintf("s%d", i), "bob")
		stories = append(stories, s)
		st.AddStory(s)
		st.ToggleFavorite(s)
	}
	before := st.Favorites()

	// unfavorite the middle story and revert
	pos := st.FavoritePosition("s1")
	assert.Equal(t, 1, pos)
	assert.False(t, st.ToggleFavorite(stories[1]))
	st.RevertFavorite(stories[1], pos)
	assert.Equal(t, before, st.Favorites())

	// favorite a new story and revert
	s := newStory("s9", "bob")
	pos = st.FavoritePosition("s9")
	assert.Equal(t, -1, pos)
	assert.True(t, st.ToggleFavorite(s))
	st.RevertFavorite(s, pos)
	assert.Equal(t, before, st.Favorites())
}

func TestLoad(t *testing.T) {
	st := InitStorage()
	st.AddStory(newStory("stale", ""))
	user := &modelstory.User{
		Username:   "ann",
		OwnStories: []modelstory.Story{newStory("s1", "ann")},
		Favorites:  []modelstory.Story{newStory("s2", "bob"), newStory("gone", "bob")},
	}
	st.Load([]modelstory.Story{newStory("s2", "bob"), newStory("s1", "ann")}, user)
	assert.Equal(t, "ann", st.CurrentUsername())
	assert.Equal(t, []string{"s2", "s1"}, storyIDs(st.Stories()))
	assert.Equal(t, []string{"s1"}, storyIDs(st.OwnStories()))
	assert.Equal(t, []string{"s2", "gone"}, storyIDs(st.Favorites()))
	assert.True(t, st.Contains(storage.OwnStories, "s1"))
	assert.False(t, st.Contains(storage.AllStories, "stale"))

	st.Load([]modelstory.Story{newStory("s2", "bob")}, nil)
	assert.Equal(t, "", st.CurrentUsername())
	assert.Empty(t, st.OwnStories())
	assert.Empty(t, st.Favorites())
}

func TestStories_ReturnsCopy(t *testing.T) {
	st := InitStorage()
	st.AddStory(newStory("s1", ""))
	stories := st.Stories()
	stories[0].Title = "changed"
	s, _ := st.Story("s1")
	assert.Equal(t, "title of s1", s.Title)
}

func TestContains_UnknownCollection(t *testing.T) {
	st := InitStorage()
	st.AddStory(newStory("s1", ""))
	assert.False(t, st.Contains(storage.Collection(42), "s1"))
}

// Benchmarks

func BenchmarkStorage_AddStory(b *testing.B) {
	st := loggedInStorage("ann")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.AddStory(newStory(fmt.Sprintf("s%d", i), "ann"))
	}
}

func BenchmarkStorage_Contains(b *testing.B) {
	st := loggedInStorage("ann")
	for i := 0; i < 1000; i++ {
		s := newStory(fmt.Sprintf("s%d", i), "ann")
		st.AddStory(s)
		st.ToggleFavorite(s)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Contains(storage.Favorites, "s500")
	}
}
