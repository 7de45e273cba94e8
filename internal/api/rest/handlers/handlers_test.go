package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_story_feed/internal/app"
	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/mocks"
	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	api          *mocks.MockStoryAPI
	auth         *mocks.MockAuthenticator
	app          *app.App
	storyHandler *StoryHandler
	router       *chi.Mux
	ts           *httptest.Server
	client       *resty.Client
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.api = mocks.NewMockStoryAPI(suite.ctrl)
	suite.auth = mocks.NewMockAuthenticator(suite.ctrl)
	var err error
	suite.app, err = app.InitApp(config.NewDefaultConfiguration(), suite.api, suite.auth, nil, zerolog.Nop())
	suite.Require().NoError(err)
	suite.storyHandler, err = InitStoryHandler(suite.app)
	suite.Require().NoError(err)
	suite.router = chi.NewRouter()
	suite.router.Get("/api/stories", suite.storyHandler.HandleGetStories())
	suite.router.Post("/api/stories", suite.storyHandler.HandlePostStory())
	suite.router.Patch("/api/stories/{storyID}", suite.storyHandler.HandlePatchStory())
	suite.router.Delete("/api/stories/{storyID}", suite.storyHandler.HandleDeleteStory())
	suite.router.Post("/api/stories/{storyID}/favorite", suite.storyHandler.HandleToggleFavorite())
	suite.router.Get("/api/user/favorites", suite.storyHandler.HandleGetFavorites())
	suite.router.Get("/api/user/stories", suite.storyHandler.HandleGetOwnStories())
	suite.router.Post("/api/login", suite.storyHandler.HandleLogin())
	suite.router.Post("/api/logout", suite.storyHandler.HandleLogout())
	suite.router.Get("/ping", suite.storyHandler.HandlePing())
	suite.ts = httptest.NewServer(suite.router)
	suite.client = resty.New().SetBaseURL(suite.ts.URL)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ts.Close()
	suite.ctrl.Finish()
}

// TestHandlersTestSuite initializes test suite for being accessible
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

// login makes ann current with one own story s1 and bob's story s2 in the feed.
func (suite *HandlersTestSuite) login() {
	mine := modelstory.Story{StoryID: "s1", Title: "Mine", URL: "https://www.ann.dev/post", Username: "ann"}
	other := modelstory.Story{StoryID: "s2", Title: "Other", URL: "https://bob.org", Username: "bob"}
	user := modelstory.User{Username: "ann", Name: "Ann", OwnStories: []modelstory.Story{mine}}
	suite.auth.EXPECT().Login(gomock.Any(), "ann", "secret").Return("token-ann", user, nil)
	suite.api.EXPECT().ListStories(gomock.Any(), 0, gomock.Any()).Return([]modelstory.Story{mine, other}, nil)
	suite.api.EXPECT().GetUser(gomock.Any(), "token-ann", "ann").Return(user, nil)
	res, err := suite.client.R().SetBody(modeldto.RequestLogin{Username: "ann", Password: "secret"}).Post("/api/login")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleGetStories() {
	suite.login()
	var views []modeldto.StoryView
	res, err := suite.client.R().SetResult(&views).Get("/api/stories")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Require().Len(views, 2)
	suite.Equal("s1", views[0].StoryID)
	suite.Equal("ann.dev", views[0].HostName)
	suite.True(views[0].Own)
	suite.False(views[1].Own)
	suite.False(views[1].Favorite)
}

func (suite *HandlersTestSuite) TestHandleGetFavorites_LoggedOut() {
	res, err := suite.client.R().Get("/api/user/favorites")
	suite.Require().NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
	res, err = suite.client.R().Get("/api/user/stories")
	suite.Require().NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandlePostStory() {
	suite.login()
	created := modelstory.Story{StoryID: "s3", Title: "Go", URL: "https://go.dev", Author: "Ann", Username: "ann"}
	suite.api.EXPECT().CreateStory(gomock.Any(), "token-ann", created.Fields()).Return(created, nil)

	type want struct {
		code int
	}
	tests := []struct {
		name string
		body string
		want want
	}{
		{
			name: "Correct POST query",
			body: `{"author":"Ann","title":"Go","url":"https://go.dev"}`,
			want: want{code: 201},
		},
		{
			name: "Invalid POST query (empty title)",
			body: `{"author":"Ann","title":"","url":"https://go.dev"}`,
			want: want{code: 400},
		},
		{
			name: "Invalid POST query (malformed JSON)",
			body: `{"author":`,
			want: want{code: 400},
		},
	}

	// perform each test
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := suite.client.R().SetHeader("Content-Type", "application/json").SetBody(tt.body).Post("/api/stories")
			if err != nil {
				t.Fatalf(err.Error())
			}
			assert.Equal(t, tt.want.code, res.StatusCode())
		})
	}
	var views []modeldto.StoryView
	_, err := suite.client.R().SetResult(&views).Get("/api/user/stories")
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal("s3", views[0].StoryID)
}

func (suite *HandlersTestSuite) TestHandlePatchStory() {
	suite.login()
	fields := modelstory.StoryFields{Title: "Mine v2", URL: "https://ann.dev/v2"}
	suite.api.EXPECT().UpdateStory(gomock.Any(), "token-ann", "s1", fields).Return(nil)

	var view modeldto.StoryView
	res, err := suite.client.R().SetBody(modeldto.RequestStory{Title: fields.Title, URL: fields.URL}).SetResult(&view).
		Patch("/api/stories/s1")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal("Mine v2", view.Title)

	res, err = suite.client.R().SetBody(modeldto.RequestStory{Title: "x", URL: "https://x.org"}).Patch("/api/stories/s2")
	suite.Require().NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleDeleteStory() {
	suite.login()
	gomock.InOrder(
		suite.api.EXPECT().DeleteStory(gomock.Any(), "token-ann", "s1").
			Return(&storyapi.APIError{StatusCode: 500, Message: "down"}),
		suite.api.EXPECT().DeleteStory(gomock.Any(), "token-ann", "s1").Return(nil),
	)

	res, err := suite.client.R().Delete("/api/stories/s1")
	suite.Require().NoError(err)
	suite.Equal(http.StatusBadGateway, res.StatusCode())
	var body modeldto.ResponseError
	suite.Require().NoError(json.Unmarshal(res.Body(), &body))
	suite.Contains(body.Error, "down")

	res, err = suite.client.R().Delete("/api/stories/s1")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNoContent, res.StatusCode())
	_, ok := suite.app.Store.Story("s1")
	suite.False(ok)
}

func (suite *HandlersTestSuite) TestHandleToggleFavorite() {
	suite.login()
	suite.api.EXPECT().AddFavorite(gomock.Any(), "token-ann", "ann", "s2").Return(nil)

	var fav modeldto.ResponseFavorite
	res, err := suite.client.R().SetResult(&fav).Post("/api/stories/s2/favorite")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.True(fav.Favorite)

	var views []modeldto.StoryView
	_, err = suite.client.R().SetResult(&views).Get("/api/user/favorites")
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.True(views[0].Favorite)

	res, err = suite.client.R().Post("/api/stories/unknown/favorite")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotFound, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleLogin_Failure() {
	suite.auth.EXPECT().Login(gomock.Any(), "ann", "wrong").
		Return("", modelstory.User{}, &storyapi.APIError{StatusCode: 401, Message: "Invalid password"})
	res, err := suite.client.R().SetBody(modeldto.RequestLogin{Username: "ann", Password: "wrong"}).Post("/api/login")
	suite.Require().NoError(err)
	suite.Equal(http.StatusUnauthorized, res.StatusCode())

	res, err = suite.client.R().SetBody(modeldto.RequestLogin{Username: "", Password: "x"}).Post("/api/login")
	suite.Require().NoError(err)
	suite.Equal(http.StatusBadRequest, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleLogout() {
	suite.login()
	suite.api.EXPECT().ListStories(gomock.Any(), 0, gomock.Any()).Return(nil, nil)
	res, err := suite.client.R().Post("/api/logout")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNoContent, res.StatusCode())
	_, ok := suite.app.Session.Current()
	suite.False(ok)
}

func (suite *HandlersTestSuite) TestHandlePing() {
	res, err := suite.client.R().Get("/ping")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
}

func TestInitStoryHandler(t *testing.T) {
	_, err := InitStoryHandler(nil)
	assert.Equal(t, "nil App was passed to Story Handler initializer", err.Error())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "validation", err: &serviceErrors.ValidationError{Field: "url"}, code: 400},
		{name: "authorization", err: &serviceErrors.AuthorizationError{StoryID: "s1"}, code: 403},
		{name: "not found", err: &serviceErrors.NotFoundError{StoryID: "s1"}, code: 404},
		{name: "timeout", err: &serviceErrors.ContextTimeoutExceededError{Err: errors.New("deadline")}, code: 504},
		{name: "remote", err: &serviceErrors.RemoteError{Op: "list", StatusCode: 500, Err: errors.New("x")}, code: 502},
		{name: "unauthorized", err: &serviceErrors.RemoteError{Op: "login", StatusCode: 401, Err: errors.New("x")}, code: 401},
		{name: "unknown", err: errors.New("x"), code: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, statusOf(tt.err))
		})
	}
}
