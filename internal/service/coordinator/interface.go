// Package coordinator provides interfaces for types to be in compliance with.
package coordinator

import (
	"context"

	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
)

// Coordinator defines a set of methods for types implementing Coordinator.
type Coordinator interface {
	Submit(ctx context.Context, fields modelstory.StoryFields) (modelstory.Story, error)
	Remove(ctx context.Context, storyID string) error
	Update(ctx context.Context, storyID string, fields modelstory.StoryFields) error
	ToggleFavorite(ctx context.Context, story modelstory.Story) (favorited bool, err error)
	Refresh(ctx context.Context) error
	Adopt(user *modelstory.User)
}
