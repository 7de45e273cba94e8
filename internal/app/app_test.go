package app

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/mocks"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
	"github.com/danilovkiri/dk_go_story_feed/internal/session"
)

func TestInitApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, err := InitApp(nil, nil, nil, nil, zerolog.Nop())
	assert.Equal(t, "nil config was passed to app initializer", err.Error())
	_, err = InitApp(config.NewDefaultConfiguration(), mocks.NewMockStoryAPI(ctrl), nil, nil, zerolog.Nop())
	assert.Equal(t, "nil authenticator was passed to session manager initializer", err.Error())
	_, err = InitApp(config.NewDefaultConfiguration(), nil, mocks.NewMockAuthenticator(ctrl), nil, zerolog.Nop())
	assert.Equal(t, "nil story API was passed to coordinator initializer", err.Error())
}

func TestBootstrap_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockStoryAPI(ctrl)
	persister := mocks.NewMockPersister(ctrl)
	persister.EXPECT().Load().Return(session.Credentials{}, false, nil)
	api.EXPECT().ListStories(gomock.Any(), 0, gomock.Any()).
		Return([]modelstory.Story{{StoryID: "s1", Username: "bob"}}, nil)
	a, err := InitApp(config.NewDefaultConfiguration(), api, mocks.NewMockAuthenticator(ctrl), persister, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Bootstrap(context.Background()))
	assert.Equal(t, Stats{Stories: 1}, a.Stats())
}

func TestBootstrap_RejectedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockStoryAPI(ctrl)
	persister := mocks.NewMockPersister(ctrl)
	creds := session.Credentials{Username: "ann", Token: "stale"}
	stories := []modelstory.Story{{StoryID: "s1", Username: "bob"}}
	persister.EXPECT().Load().Return(creds, true, nil)
	persister.EXPECT().Clear().Return(nil)
	api.EXPECT().ListStories(gomock.Any(), 0, gomock.Any()).Return(stories, nil).Times(2)
	api.EXPECT().GetUser(gomock.Any(), "stale", "ann").Return(modelstory.User{}, errors.New("401"))
	a, err := InitApp(config.NewDefaultConfiguration(), api, mocks.NewMockAuthenticator(ctrl), persister, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Bootstrap(context.Background()))
	_, ok := a.Session.Current()
	assert.False(t, ok)
	assert.Equal(t, Stats{Stories: 1}, a.Stats())
}

func TestLoginLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockStoryAPI(ctrl)
	auth := mocks.NewMockAuthenticator(ctrl)
	mine := modelstory.Story{StoryID: "s1", Username: "ann"}
	user := modelstory.User{Username: "ann", OwnStories: []modelstory.Story{mine}, Favorites: []modelstory.Story{mine}}
	auth.EXPECT().Login(gomock.Any(), "ann", "secret").Return("token-ann", user, nil)
	api.EXPECT().ListStories(gomock.Any(), 0, gomock.Any()).Return([]modelstory.Story{mine}, nil).Times(2)
	api.EXPECT().GetUser(gomock.Any(), "token-ann", "ann").Return(user, nil)
	a, err := InitApp(config.NewDefaultConfiguration(), api, auth, nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = a.Login(context.Background(), "ann", "secret")
	require.NoError(t, err)
	assert.Equal(t, Stats{Username: "ann", Stories: 1, Own: 1, Favorites: 1}, a.Stats())
	assert.True(t, a.Index.IsFavorite("s1"))

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, Stats{Stories: 1}, a.Stats())
	assert.False(t, a.Index.IsOwnStory("s1"))
}

func TestLogin_RefreshFailureKeepsOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockStoryAPI(ctrl)
	auth := mocks.NewMockAuthenticator(ctrl)
	user := modelstory.User{Username: "ann"}
	fields := modelstory.StoryFields{Author: "Ann", Title: "Go", URL: "https://go.dev"}
	created := modelstory.Story{StoryID: "s1", Author: "Ann", Title: "Go", URL: "https://go.dev", Username: "ann"}
	auth.EXPECT().Login(gomock.Any(), "ann", "secret").Return("token-ann", user, nil)
	api.EXPECT().ListStories(gomock.Any(), 0, gomock.Any()).Return(nil, errors.New("down"))
	api.EXPECT().CreateStory(gomock.Any(), "token-ann", fields).Return(created, nil)
	api.EXPECT().DeleteStory(gomock.Any(), "token-ann", "s1").Return(nil)
	a, err := InitApp(config.NewDefaultConfiguration(), api, auth, nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = a.Login(context.Background(), "ann", "secret")
	require.Error(t, err)
	assert.Equal(t, Stats{Username: "ann"}, a.Stats())

	_, err = a.Coordinator.Submit(context.Background(), fields)
	require.NoError(t, err)
	assert.True(t, a.Index.IsOwnStory("s1"))
	assert.Equal(t, Stats{Username: "ann", Stories: 1, Own: 1}, a.Stats())
	require.NoError(t, a.Coordinator.Remove(context.Background(), "s1"))
	assert.Equal(t, Stats{Username: "ann"}, a.Stats())
}

func TestSignup_AdoptsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockStoryAPI(ctrl)
	auth := mocks.NewMockAuthenticator(ctrl)
	user := modelstory.User{Username: "ann", Name: "Ann"}
	auth.EXPECT().Signup(gomock.Any(), "Ann", "ann", "secret").Return("token-ann", user, nil)
	api.EXPECT().ListStories(gomock.Any(), 0, gomock.Any()).Return(nil, errors.New("down"))
	a, err := InitApp(config.NewDefaultConfiguration(), api, auth, nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = a.Signup(context.Background(), "Ann", "ann", "secret")
	require.Error(t, err)
	assert.Equal(t, "ann", a.Store.CurrentUsername())
}
