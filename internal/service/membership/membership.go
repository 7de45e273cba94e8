// Package membership answers which affordances (favorite, edit, remove) apply to a story.
package membership

import (
	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/storage"
)

// Checker defines a set of methods for types implementing Checker.
type Checker interface {
	IsFavorite(storyID string) bool
	IsOwnStory(storyID string) bool
}

// Check interface implementation explicitly
var (
	_ Checker = (*Index)(nil)
)

// Index reads membership straight from the store's ID sets so it always reflects the latest mutation.
type Index struct {
	store storage.MembershipChecker
}

// InitIndex initializes an Index object and sets its attributes.
func InitIndex(store storage.MembershipChecker) (*Index, error) {
	if store == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to membership index initializer"}
	}
	return &Index{store: store}, nil
}

// IsFavorite reports whether the current user has favorited the story.
func (idx *Index) IsFavorite(storyID string) bool {
	return idx.store.Contains(storage.Favorites, storyID)
}

// IsOwnStory reports whether the story was posted by the current user.
func (idx *Index) IsOwnStory(storyID string) bool {
	return idx.store.Contains(storage.OwnStories, storyID)
}
