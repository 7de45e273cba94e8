package devapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/inmemory"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi/httpclient"
)

// ServerTestSuite drives the story API through the same client the feed uses.
type ServerTestSuite struct {
	suite.Suite
	ts     *httptest.Server
	client *httpclient.Client
	ctx    context.Context
}

func (suite *ServerTestSuite) SetupTest() {
	cfg := config.NewDefaultConfiguration()
	router, err := NewRouter(cfg, inmemory.InitStorage(), zerolog.Nop())
	suite.Require().NoError(err)
	suite.ts = httptest.NewServer(router)
	cfg.APIBaseURL = suite.ts.URL
	suite.client, err = httpclient.InitClient(cfg, zerolog.Nop())
	suite.Require().NoError(err)
	suite.ctx = context.Background()
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.ts.Close()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) statusOf(err error) int {
	var apiErr *storyapi.APIError
	suite.Require().True(errors.As(err, &apiErr), "unexpected error %v", err)
	return apiErr.StatusCode
}

func (suite *ServerTestSuite) TestRoundTrip() {
	token, user, err := suite.client.Signup(suite.ctx, "Ann", "ann", "pw")
	suite.Require().NoError(err)
	suite.Equal("ann", user.Username)

	story, err := suite.client.CreateStory(suite.ctx, token, modelstory.StoryFields{Author: "Ann", Title: "Go", URL: "https://go.dev"})
	suite.Require().NoError(err)
	suite.NotEmpty(story.StoryID)
	suite.Equal("ann", story.Username)

	stories, err := suite.client.ListStories(suite.ctx, 0, 25)
	suite.Require().NoError(err)
	suite.Require().Len(stories, 1)
	suite.Equal(story.StoryID, stories[0].StoryID)

	suite.Require().NoError(suite.client.UpdateStory(suite.ctx, token, story.StoryID, modelstory.StoryFields{Title: "Go 2", URL: "https://go.dev"}))
	suite.Require().NoError(suite.client.AddFavorite(suite.ctx, token, "ann", story.StoryID))

	user, err = suite.client.GetUser(suite.ctx, token, "ann")
	suite.Require().NoError(err)
	suite.Require().Len(user.OwnStories, 1)
	suite.Equal("Go 2", user.OwnStories[0].Title)
	suite.Require().Len(user.Favorites, 1)

	suite.Require().NoError(suite.client.RemoveFavorite(suite.ctx, token, "ann", story.StoryID))
	suite.Require().NoError(suite.client.DeleteStory(suite.ctx, token, story.StoryID))
	stories, err = suite.client.ListStories(suite.ctx, 0, 25)
	suite.Require().NoError(err)
	suite.Empty(stories)
}

func (suite *ServerTestSuite) TestErrors() {
	annToken, _, err := suite.client.Signup(suite.ctx, "Ann", "ann", "pw")
	suite.Require().NoError(err)
	bobToken, _, err := suite.client.Signup(suite.ctx, "Bob", "bob", "pw")
	suite.Require().NoError(err)
	story, err := suite.client.CreateStory(suite.ctx, annToken, modelstory.StoryFields{Title: "Go", URL: "https://go.dev"})
	suite.Require().NoError(err)

	_, _, err = suite.client.Signup(suite.ctx, "Ann", "ann", "pw")
	suite.Equal(http.StatusConflict, suite.statusOf(err))
	_, _, err = suite.client.Login(suite.ctx, "ann", "wrong")
	suite.Equal(http.StatusUnauthorized, suite.statusOf(err))
	err = suite.client.DeleteStory(suite.ctx, bobToken, story.StoryID)
	suite.Equal(http.StatusForbidden, suite.statusOf(err))
	err = suite.client.DeleteStory(suite.ctx, annToken, "missing")
	suite.Equal(http.StatusNotFound, suite.statusOf(err))
	_, err = suite.client.GetUser(suite.ctx, bobToken, "ann")
	suite.Equal(http.StatusForbidden, suite.statusOf(err))
	_, err = suite.client.CreateStory(suite.ctx, "", modelstory.StoryFields{Title: "Go", URL: "https://go.dev"})
	suite.Equal(http.StatusUnauthorized, suite.statusOf(err))
	_, err = suite.client.ListStories(suite.ctx, 0, 0)
	suite.Equal(http.StatusBadRequest, suite.statusOf(err))
}
