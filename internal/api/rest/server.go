// Package rest provides functionality for initializing the story feed dispatcher server.
package rest

import (
	"expvar"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_story_feed/internal/app"
)

var (
	serverStart = time.Now()
)

func init() {
	expvar.Publish("system.uptime", expvar.Func(uptime))
}

// uptime returns time in seconds since the server start-up.
func uptime() interface{} {
	return int64(time.Since(serverStart).Seconds())
}

// NewRouter returns the dispatcher routes mapping user events to application actions.
func NewRouter(a *app.App, log zerolog.Logger) (*chi.Mux, error) {
	storyHandler, err := handlers.InitStoryHandler(a)
	if err != nil {
		return nil, err
	}
	trustedNetHandler := middleware.NewTrustedNetHandler(a.Config, log)
	logHandler := middleware.NewLogHandler(log)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestIDHandle)
	r.Use(logHandler.LogHandle)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Get("/ping", storyHandler.HandlePing())
	r.Route("/api", func(r chi.Router) {
		r.Get("/stories", storyHandler.HandleGetStories())
		r.Post("/stories", storyHandler.HandlePostStory())
		r.Patch("/stories/{storyID}", storyHandler.HandlePatchStory())
		r.Delete("/stories/{storyID}", storyHandler.HandleDeleteStory())
		r.Post("/stories/{storyID}/favorite", storyHandler.HandleToggleFavorite())
		r.Post("/refresh", storyHandler.HandleRefresh())
		r.Get("/user/favorites", storyHandler.HandleGetFavorites())
		r.Get("/user/stories", storyHandler.HandleGetOwnStories())
		r.Post("/login", storyHandler.HandleLogin())
		r.Post("/signup", storyHandler.HandleSignup())
		r.Post("/logout", storyHandler.HandleLogout())
		r.With(trustedNetHandler.TrustedNetworkHandler).Get("/internal/stats", storyHandler.HandleGetStats())
	})
	r.Mount("/debug", chiMiddleware.Profiler()) // see https://github.com/go-chi/chi/blob/master/middleware/profiler.go
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(a *app.App, log zerolog.Logger) (*http.Server, error) {
	r, err := NewRouter(a, log)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:         a.Config.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
