// Package service provides the development story API: users, stories and favorites with token authentication.
package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/speps/go-hashids/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/service"
	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/devapi/service/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage"
	storageErrors "github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/modelstorage"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/secretary"
)

const SaltKey = "Some Hashing Key"
const MinLength = 5

// Check interface implementation explicitly
var (
	_ service.Processor = (*Processor)(nil)
)

// Processor struct defines data structure handling and provides support for adding new implementations.
type Processor struct {
	hashID  *hashids.HashID
	seq     int64
	storage storage.Storage
	sec     secretary.Secretary
	log     zerolog.Logger
}

// InitProcessor initializes a Processor object and sets its attributes.
func InitProcessor(s storage.Storage, sec secretary.Secretary, log zerolog.Logger) (*Processor, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	if sec == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil secretary was passed to service initializer"}
	}
	hd := hashids.NewData()
	hd.Salt = SaltKey
	hd.MinLength = MinLength
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, &serviceErrors.ServiceInitHashError{Msg: err.Error()}
	}
	return &Processor{hashID: hashID, storage: s, sec: sec, log: log}, nil
}

// Signup stores a new user with a bcrypt hash of the password and returns a token for them.
func (p *Processor) Signup(ctx context.Context, name, username, password string) (string, service.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", service.Profile{}, &serviceErrors.ServiceIncorrectInputError{Msg: "username and password are required"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", service.Profile{}, err
	}
	user := modelstorage.UserEntry{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := p.storage.CreateUser(ctx, user); err != nil {
		return "", service.Profile{}, err
	}
	p.log.Info().Str("username", username).Msg("Signup: user created")
	return p.sec.Encode(username), service.Profile{User: user}, nil
}

// Login checks the password of a user and returns a token for them.
func (p *Processor) Login(ctx context.Context, username, password string) (string, service.Profile, error) {
	user, err := p.storage.GetUser(ctx, username)
	if errors.As(err, &storageErrors.StorageNotFoundError{}) {
		return "", service.Profile{}, &serviceErrors.ServiceUnauthorizedError{Msg: "Invalid credentials"}
	}
	if err != nil {
		return "", service.Profile{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", service.Profile{}, &serviceErrors.ServiceUnauthorizedError{Msg: "Invalid credentials"}
	}
	profile, err := p.profile(ctx, user)
	if err != nil {
		return "", service.Profile{}, err
	}
	return p.sec.Encode(username), profile, nil
}

// ListStories returns a page of stories, newest first.
func (p *Processor) ListStories(ctx context.Context, skip, limit int) ([]modelstorage.StoryEntry, error) {
	if skip < 0 || limit <= 0 {
		return nil, &serviceErrors.ServiceIncorrectInputError{Msg: "skip must not be negative and limit must be positive"}
	}
	return p.storage.ListStories(ctx, skip, limit)
}

// GetStory returns a story by ID.
func (p *Processor) GetStory(ctx context.Context, storyID string) (modelstorage.StoryEntry, error) {
	return p.storage.GetStory(ctx, storyID)
}

// CreateStory stores a story posted by the token holder under a fresh hashids slug.
func (p *Processor) CreateStory(ctx context.Context, token string, input service.StoryInput) (modelstorage.StoryEntry, error) {
	username, err := p.authenticate(ctx, token)
	if err != nil {
		return modelstorage.StoryEntry{}, err
	}
	if err := validateInput(input, true); err != nil {
		return modelstorage.StoryEntry{}, err
	}
	storyID, err := p.generateSlug()
	if err != nil {
		return modelstorage.StoryEntry{}, &serviceErrors.ServiceEncodingHashError{Msg: err.Error()}
	}
	story := modelstorage.StoryEntry{
		StoryID:   storyID,
		Author:    input.Author,
		Title:     input.Title,
		URL:       input.URL,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.storage.CreateStory(ctx, story); err != nil {
		return modelstorage.StoryEntry{}, err
	}
	p.log.Info().Str("story_id", storyID).Str("username", username).Msg("CreateStory: stored")
	return story, nil
}

// UpdateStory overwrites the non-empty fields of an own story.
func (p *Processor) UpdateStory(ctx context.Context, token, storyID string, input service.StoryInput) (modelstorage.StoryEntry, error) {
	story, err := p.ownStory(ctx, token, storyID)
	if err != nil {
		return modelstorage.StoryEntry{}, err
	}
	if err := validateInput(input, false); err != nil {
		return modelstorage.StoryEntry{}, err
	}
	if input.Author != "" {
		story.Author = input.Author
	}
	if input.Title != "" {
		story.Title = input.Title
	}
	if input.URL != "" {
		story.URL = input.URL
	}
	if err := p.storage.UpdateStory(ctx, story); err != nil {
		return modelstorage.StoryEntry{}, err
	}
	return story, nil
}

// DeleteStory removes an own story together with every favorite of it.
func (p *Processor) DeleteStory(ctx context.Context, token, storyID string) (modelstorage.StoryEntry, error) {
	story, err := p.ownStory(ctx, token, storyID)
	if err != nil {
		return modelstorage.StoryEntry{}, err
	}
	if err := p.storage.DeleteStory(ctx, storyID); err != nil {
		return modelstorage.StoryEntry{}, err
	}
	p.log.Info().Str("story_id", storyID).Msg("DeleteStory: removed")
	return story, nil
}

// GetProfile returns the profile of the token holder.
func (p *Processor) GetProfile(ctx context.Context, token, username string) (service.Profile, error) {
	user, err := p.self(ctx, token, username)
	if err != nil {
		return service.Profile{}, err
	}
	return p.profile(ctx, user)
}

// AddFavorite marks a story as a favorite of the token holder.
func (p *Processor) AddFavorite(ctx context.Context, token, username, storyID string) (service.Profile, error) {
	user, err := p.self(ctx, token, username)
	if err != nil {
		return service.Profile{}, err
	}
	if err := p.storage.AddFavorite(ctx, username, storyID); err != nil {
		return service.Profile{}, err
	}
	return p.profile(ctx, user)
}

// RemoveFavorite unmarks a story as a favorite of the token holder.
func (p *Processor) RemoveFavorite(ctx context.Context, token, username, storyID string) (service.Profile, error) {
	user, err := p.self(ctx, token, username)
	if err != nil {
		return service.Profile{}, err
	}
	if err := p.storage.RemoveFavorite(ctx, username, storyID); err != nil {
		return service.Profile{}, err
	}
	return p.profile(ctx, user)
}

// PingDB checks the storage connection.
func (p *Processor) PingDB() error {
	return p.storage.PingDB()
}

// authenticate resolves a token into the username of an existing user.
func (p *Processor) authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", &serviceErrors.ServiceUnauthorizedError{Msg: "Missing token"}
	}
	username, err := p.sec.Decode(token)
	if err != nil {
		return "", &serviceErrors.ServiceUnauthorizedError{Msg: "Invalid token"}
	}
	if _, err := p.storage.GetUser(ctx, username); err != nil {
		if errors.As(err, &storageErrors.StorageNotFoundError{}) {
			return "", &serviceErrors.ServiceUnauthorizedError{Msg: "Invalid token"}
		}
		return "", err
	}
	return username, nil
}

// self checks that the token belongs to username.
func (p *Processor) self(ctx context.Context, token, username string) (modelstorage.UserEntry, error) {
	holder, err := p.authenticate(ctx, token)
	if err != nil {
		return modelstorage.UserEntry{}, err
	}
	if holder != username {
		return modelstorage.UserEntry{}, &serviceErrors.ServiceForbiddenError{Msg: "Token does not belong to " + username}
	}
	return p.storage.GetUser(ctx, username)
}

// ownStory returns a story after checking the token holder posted it.
func (p *Processor) ownStory(ctx context.Context, token, storyID string) (modelstorage.StoryEntry, error) {
	username, err := p.authenticate(ctx, token)
	if err != nil {
		return modelstorage.StoryEntry{}, err
	}
	story, err := p.storage.GetStory(ctx, storyID)
	if err != nil {
		return modelstorage.StoryEntry{}, err
	}
	if story.Username != username {
		return modelstorage.StoryEntry{}, &serviceErrors.ServiceForbiddenError{Msg: "You can only change your own stories"}
	}
	return story, nil
}

func (p *Processor) profile(ctx context.Context, user modelstorage.UserEntry) (service.Profile, error) {
	stories, err := p.storage.ListStoriesByUser(ctx, user.Username)
	if err != nil {
		return service.Profile{}, err
	}
	favorites, err := p.storage.ListFavorites(ctx, user.Username)
	if err != nil {
		return service.Profile{}, err
	}
	return service.Profile{User: user, Stories: stories, Favorites: favorites}, nil
}

// generateSlug generates and returns a short unique story identifier.
func (p *Processor) generateSlug() (string, error) {
	now := time.Now().UnixNano()
	seq := atomic.AddInt64(&p.seq, 1)
	return p.hashID.EncodeInt64([]int64{now, seq})
}

func validateInput(input service.StoryInput, create bool) error {
	if create && (input.Title == "" || input.URL == "") {
		return &serviceErrors.ServiceIncorrectInputError{Msg: "title and url are required"}
	}
	if input.URL == "" {
		return nil
	}
	u, err := url.ParseRequestURI(input.URL)
	if err != nil || u.Host == "" {
		return &serviceErrors.ServiceIncorrectInputError{Msg: "url is malformed"}
	}
	return nil
}
