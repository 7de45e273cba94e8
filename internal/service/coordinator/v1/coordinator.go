// Package coordinator provides functionality for applying user actions to the remote story API and the local
// story collections in an order that keeps both consistent.
package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/coordinator"
	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/membership"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/session"
	"github.com/danilovkiri/dk_go_story_feed/internal/storage"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi"
)

// DefaultStoriesLimit is the page size used by Refresh when none is configured.
const DefaultStoriesLimit = 25

// Check interface implementation explicitly
var (
	_ coordinator.Coordinator = (*Coordinator)(nil)
)

// Coordinator struct defines data structure handling and provides support for adding new implementations.
type Coordinator struct {
	api     storyapi.StoryAPI
	store   storage.CollectionStore
	index   membership.Checker
	session session.Provider
	// gate lets actions run concurrently but makes Refresh exclusive
	gate    sync.RWMutex
	stories *keyLock
	timeout time.Duration
	limit   int
	log     zerolog.Logger
}

// InitCoordinator initializes a Coordinator object and sets its attributes.
func InitCoordinator(api storyapi.StoryAPI, store storage.CollectionStore, index membership.Checker, provider session.Provider, cfg *config.Config, log zerolog.Logger) (*Coordinator, error) {
	if api == nil {
		return nil, &serviceErrors.ServiceFoundNilAPI{Msg: "nil story API was passed to coordinator initializer"}
	}
	if store == nil || index == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to coordinator initializer"}
	}
	if provider == nil {
		return nil, &serviceErrors.ServiceFoundNilSession{Msg: "nil session was passed to coordinator initializer"}
	}
	limit := cfg.StoriesLimit
	if limit <= 0 {
		limit = DefaultStoriesLimit
	}
	return &Coordinator{
		api:     api,
		store:   store,
		index:   index,
		session: provider,
		stories: newKeyLock(),
		timeout: cfg.RequestTimeout,
		limit:   limit,
		log:     log,
	}, nil
}

// Submit creates a story remotely and adds the created story to the local collections.
func (c *Coordinator) Submit(ctx context.Context, fields modelstory.StoryFields) (modelstory.Story, error) {
	creds, err := c.credentials()
	if err != nil {
		return modelstory.Story{}, err
	}
	if err := fields.Validate(); err != nil {
		return modelstory.Story{}, err
	}
	c.gate.RLock()
	defer c.gate.RUnlock()

	rctx, cancel := c.withTimeout(ctx)
	defer cancel()
	story, err := c.api.CreateStory(rctx, creds.Token, fields)
	if err != nil {
		c.log.Warn().Err(err).Str("title", fields.Title).Msg("Submit: remote create failed")
		return modelstory.Story{}, storyapi.NewRemoteError("create", err)
	}
	c.store.AddStory(story)
	c.log.Info().Str("story_id", story.StoryID).Msg("Submit: story added")
	return story, nil
}

// Remove deletes an own story remotely and then drops it from the local collections.
func (c *Coordinator) Remove(ctx context.Context, storyID string) error {
	creds, err := c.credentials()
	if err != nil {
		return err
	}
	unlock, err := c.acquire(ctx, storyID)
	if err != nil {
		return err
	}
	defer unlock()

	if !c.index.IsOwnStory(storyID) {
		return &serviceErrors.AuthorizationError{StoryID: storyID, Msg: "story is not owned by current user"}
	}
	rctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.api.DeleteStory(rctx, creds.Token, storyID); err != nil {
		c.log.Warn().Err(err).Str("story_id", storyID).Msg("Remove: remote delete failed")
		return storyapi.NewRemoteError("delete", err)
	}
	if !c.store.RemoveStory(storyID) {
		c.log.Debug().Err(&serviceErrors.NotFoundError{StoryID: storyID}).Msg("Remove: nothing to remove locally")
		return nil
	}
	c.log.Info().Str("story_id", storyID).Msg("Remove: story removed")
	return nil
}

// Update changes an own story remotely and applies the fields locally only after the remote call succeeded.
func (c *Coordinator) Update(ctx context.Context, storyID string, fields modelstory.StoryFields) error {
	creds, err := c.credentials()
	if err != nil {
		return err
	}
	if err := fields.Validate(); err != nil {
		return err
	}
	unlock, err := c.acquire(ctx, storyID)
	if err != nil {
		return err
	}
	defer unlock()

	if !c.index.IsOwnStory(storyID) {
		return &serviceErrors.AuthorizationError{StoryID: storyID, Msg: "story is not owned by current user"}
	}
	rctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.api.UpdateStory(rctx, creds.Token, storyID, fields); err != nil {
		c.log.Warn().Err(err).Str("story_id", storyID).Msg("Update: remote update failed")
		return storyapi.NewRemoteError("update", err)
	}
	if !c.store.UpdateStory(storyID, fields) {
		c.log.Debug().Err(&serviceErrors.NotFoundError{StoryID: storyID}).Msg("Update: nothing to update locally")
		return nil
	}
	c.log.Info().Str("story_id", storyID).Msg("Update: story updated")
	return nil
}

// ToggleFavorite flips the favorite state of a story locally right away and then remotely, a failed remote
// call puts the local favorites back exactly as they were.
func (c *Coordinator) ToggleFavorite(ctx context.Context, story modelstory.Story) (bool, error) {
	creds, err := c.credentials()
	if err != nil {
		return false, err
	}
	unlock, err := c.acquire(ctx, story.StoryID)
	if err != nil {
		return false, err
	}
	defer unlock()

	wasFavorite := c.index.IsFavorite(story.StoryID)
	position := c.store.FavoritePosition(story.StoryID)
	favorited := c.store.ToggleFavorite(story)

	rctx, cancel := c.withTimeout(ctx)
	defer cancel()
	op := "add favorite"
	if favorited {
		err = c.api.AddFavorite(rctx, creds.Token, creds.Username, story.StoryID)
	} else {
		op = "remove favorite"
		err = c.api.RemoveFavorite(rctx, creds.Token, creds.Username, story.StoryID)
	}
	if err != nil {
		c.store.RevertFavorite(story, position)
		c.log.Warn().Err(err).Str("story_id", story.StoryID).Bool("favorite", wasFavorite).Msg("ToggleFavorite: rolled back")
		return wasFavorite, storyapi.NewRemoteError(op, err)
	}
	c.log.Info().Str("story_id", story.StoryID).Bool("favorite", favorited).Msg("ToggleFavorite: applied")
	return favorited, nil
}

// Refresh reloads stories and, for a logged-in user, their own stories and favorites.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.gate.Lock()
	defer c.gate.Unlock()

	rctx, cancel := c.withTimeout(ctx)
	defer cancel()
	stories, err := c.api.ListStories(rctx, 0, c.limit)
	if err != nil {
		c.log.Warn().Err(err).Msg("Refresh: remote list failed")
		return storyapi.NewRemoteError("list", err)
	}
	creds, ok := c.session.Current()
	if !ok {
		c.store.Load(stories, nil)
		c.log.Info().Int("stories", len(stories)).Msg("Refresh: loaded")
		return nil
	}
	user, err := c.api.GetUser(rctx, creds.Token, creds.Username)
	if err != nil {
		c.log.Warn().Err(err).Str("username", creds.Username).Msg("Refresh: remote get user failed")
		return storyapi.NewRemoteError("get user", err)
	}
	c.store.Load(stories, &user)
	c.log.Info().
		Int("stories", len(stories)).
		Int("own", len(user.OwnStories)).
		Int("favorites", len(user.Favorites)).
		Msg("Refresh: loaded")
	return nil
}

// Adopt hands the collections over to user, or to no one when user is nil, keeping the global list as is.
// Own stories and favorites come from user until the next Refresh replaces them.
func (c *Coordinator) Adopt(user *modelstory.User) {
	c.gate.Lock()
	defer c.gate.Unlock()
	c.store.Load(c.store.Stories(), user)
}

// acquire enters the shared gate and takes the per-story lock.
func (c *Coordinator) acquire(ctx context.Context, storyID string) (func(), error) {
	c.gate.RLock()
	unlock, err := c.stories.lock(ctx, storyID)
	if err != nil {
		c.gate.RUnlock()
		return nil, &serviceErrors.ContextTimeoutExceededError{Err: err}
	}
	return func() {
		unlock()
		c.gate.RUnlock()
	}, nil
}

func (c *Coordinator) credentials() (session.Credentials, error) {
	creds, ok := c.session.Current()
	if !ok {
		return session.Credentials{}, &serviceErrors.AuthorizationError{Msg: "login required"}
	}
	return creds, nil
}

func (c *Coordinator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
