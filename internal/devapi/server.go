// Package devapi provides functionality for initializing a local story API server speaking the remote wire format.
package devapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/handlers"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/service/v1"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/secretary/v1"
)

// NewRouter returns the story API routes backed by the given storage.
func NewRouter(cfg *config.Config, st storage.Storage, log zerolog.Logger) (*chi.Mux, error) {
	processor, err := service.InitProcessor(st, secretary.NewSecretaryService(cfg.UserKey), log)
	if err != nil {
		return nil, err
	}
	apiHandler, err := handlers.InitAPIHandler(processor, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestIDHandle)
	r.Use(middleware.NewLogHandler(log).LogHandle)
	r.Use(middleware.DecompressHandle)
	r.Get("/ping", apiHandler.HandlePingDB())
	r.Get("/stories", apiHandler.HandleListStories())
	r.Post("/stories", apiHandler.HandlePostStory())
	r.Get("/stories/{storyID}", apiHandler.HandleGetStory())
	r.Patch("/stories/{storyID}", apiHandler.HandlePatchStory())
	r.Delete("/stories/{storyID}", apiHandler.HandleDeleteStory())
	r.Get("/users/{username}", apiHandler.HandleGetUser())
	r.Post("/users/{username}/favorites/{storyID}", apiHandler.HandleAddFavorite())
	r.Delete("/users/{username}/favorites/{storyID}", apiHandler.HandleRemoveFavorite())
	r.Post("/login", apiHandler.HandleLogin())
	r.Post("/signup", apiHandler.HandleSignup())
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, st storage.Storage, log zerolog.Logger) (*http.Server, error) {
	r, err := NewRouter(cfg, st, log)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:         cfg.DevAPIAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
