// Package httpclient provides a story API client speaking JSON over HTTP.
package httpclient

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi/modeldto"
)

// Check interface implementation explicitly
var (
	_ storyapi.StoryAPI      = (*Client)(nil)
	_ storyapi.Authenticator = (*Client)(nil)
)

// Client defines object structure and its attributes.
type Client struct {
	client *resty.Client
	log    zerolog.Logger
}

// InitClient initializes a Client object and sets its attributes.
func InitClient(cfg *config.Config, log zerolog.Logger) (*Client, error) {
	if cfg == nil || cfg.APIBaseURL == "" {
		return nil, errors.New("empty story API base URL was passed to client initializer")
	}
	client := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}
	log.Info().Str("base_url", cfg.APIBaseURL).Msg("Story API client initialized")
	return &Client{client: client, log: log}, nil
}

// ListStories retrieves a page of stories, newest first.
func (c *Client) ListStories(ctx context.Context, skip, limit int) ([]modelstory.Story, error) {
	var res modeldto.ResponseStories
	req := c.request(ctx).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&res)
	if err := c.check(req.Get("/stories")); err != nil {
		c.log.Warn().Err(err).Msg("ListStories")
		return nil, err
	}
	return modeldto.StoriesToModel(res.Stories), nil
}

// CreateStory submits a new story and returns it with its server-assigned ID.
func (c *Client) CreateStory(ctx context.Context, token string, fields modelstory.StoryFields) (modelstory.Story, error) {
	var res modeldto.ResponseStory
	req := c.request(ctx).
		SetBody(modeldto.RequestStory{Token: token, Story: modeldto.FromFields(fields)}).
		SetResult(&res)
	if err := c.check(req.Post("/stories")); err != nil {
		c.log.Warn().Err(err).Str("title", fields.Title).Msg("CreateStory")
		return modelstory.Story{}, err
	}
	c.log.Debug().Str("story_id", res.Story.StoryID).Msg("CreateStory: created")
	return res.Story.ToModel(), nil
}

// UpdateStory overwrites the mutable fields of a story.
func (c *Client) UpdateStory(ctx context.Context, token string, storyID string, fields modelstory.StoryFields) error {
	req := c.request(ctx).
		SetPathParam("storyID", storyID).
		SetBody(modeldto.RequestStory{Token: token, Story: modeldto.FromFields(fields)})
	if err := c.check(req.Patch("/stories/{storyID}")); err != nil {
		c.log.Warn().Err(err).Str("story_id", storyID).Msg("UpdateStory")
		return err
	}
	return nil
}

// DeleteStory removes a story.
func (c *Client) DeleteStory(ctx context.Context, token string, storyID string) error {
	req := c.request(ctx).
		SetPathParam("storyID", storyID).
		SetBody(modeldto.RequestToken{Token: token})
	if err := c.check(req.Delete("/stories/{storyID}")); err != nil {
		c.log.Warn().Err(err).Str("story_id", storyID).Msg("DeleteStory")
		return err
	}
	return nil
}

// AddFavorite marks a story as a favorite of the user.
func (c *Client) AddFavorite(ctx context.Context, token string, username string, storyID string) error {
	req := c.favoriteRequest(ctx, token, username, storyID)
	if err := c.check(req.Post("/users/{username}/favorites/{storyID}")); err != nil {
		c.log.Warn().Err(err).Str("story_id", storyID).Msg("AddFavorite")
		return err
	}
	return nil
}

// RemoveFavorite unmarks a story as a favorite of the user.
func (c *Client) RemoveFavorite(ctx context.Context, token string, username string, storyID string) error {
	req := c.favoriteRequest(ctx, token, username, storyID)
	if err := c.check(req.Delete("/users/{username}/favorites/{storyID}")); err != nil {
		c.log.Warn().Err(err).Str("story_id", storyID).Msg("RemoveFavorite")
		return err
	}
	return nil
}

// GetUser retrieves a user with their own stories and favorites.
func (c *Client) GetUser(ctx context.Context, token string, username string) (modelstory.User, error) {
	var res modeldto.ResponseUser
	req := c.request(ctx).
		SetPathParam("username", username).
		SetQueryParam("token", token).
		SetResult(&res)
	if err := c.check(req.Get("/users/{username}")); err != nil {
		c.log.Warn().Err(err).Str("username", username).Msg("GetUser")
		return modelstory.User{}, err
	}
	return res.User.ToModel(), nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username string, password string) (string, modelstory.User, error) {
	return c.authenticate(ctx, "/login", modeldto.Credentials{Username: username, Password: password})
}

// Signup creates a user and returns its token.
func (c *Client) Signup(ctx context.Context, name string, username string, password string) (string, modelstory.User, error) {
	return c.authenticate(ctx, "/signup", modeldto.Credentials{Name: name, Username: username, Password: password})
}

func (c *Client) authenticate(ctx context.Context, path string, credentials modeldto.Credentials) (string, modelstory.User, error) {
	var res modeldto.ResponseAuth
	req := c.request(ctx).
		SetBody(modeldto.RequestCredentials{User: credentials}).
		SetResult(&res)
	if err := c.check(req.Post(path)); err != nil {
		c.log.Warn().Err(err).Str("username", credentials.Username).Msg("authenticate")
		return "", modelstory.User{}, err
	}
	return res.Token, res.User.ToModel(), nil
}

func (c *Client) favoriteRequest(ctx context.Context, token string, username string, storyID string) *resty.Request {
	return c.request(ctx).
		SetPathParams(map[string]string{"username": username, "storyID": storyID}).
		SetBody(modeldto.RequestToken{Token: token})
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx).SetError(&modeldto.ResponseError{})
}

// check turns transport failures and error statuses into errors.
func (c *Client) check(res *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !res.IsError() {
		return nil
	}
	apiErr := &storyapi.APIError{StatusCode: res.StatusCode(), Message: http.StatusText(res.StatusCode())}
	if body, ok := res.Error().(*modeldto.ResponseError); ok && body.Error.Message != "" {
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
