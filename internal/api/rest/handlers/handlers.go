// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_story_feed/internal/app"
	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
)

// StoryHandler defines data structure handling and provides support for adding new implementations.
type StoryHandler struct {
	app     *app.App
	timeout time.Duration
}

// InitStoryHandler initializes a StoryHandler object and sets its attributes.
func InitStoryHandler(a *app.App) (*StoryHandler, error) {
	if a == nil {
		return nil, fmt.Errorf("nil App was passed to Story Handler initializer")
	}
	// a request may wait for a refresh and then make its own remote call
	timeout := 2 * a.Config.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &StoryHandler{app: a, timeout: timeout}, nil
}

// HandleGetStories renders the global story list.
func (h *StoryHandler) HandleGetStories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, modeldto.NewStoryViews(h.app.Store.Stories(), h.app.Index))
	}
}

// HandleGetFavorites renders the favorites of the current user.
func (h *StoryHandler) HandleGetFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.loggedIn(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, modeldto.NewStoryViews(h.app.Store.Favorites(), h.app.Index))
	}
}

// HandleGetOwnStories renders the stories posted by the current user.
func (h *StoryHandler) HandleGetOwnStories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.loggedIn(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, modeldto.NewStoryViews(h.app.Store.OwnStories(), h.app.Index))
	}
}

// HandlePostStory submits a new story.
func (h *StoryHandler) HandlePostStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		var req modeldto.RequestStory
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		story, err := h.app.Coordinator.Submit(ctx, req.Fields())
		if err != nil {
			writeError(w, r, "HandlePostStory", err)
			return
		}
		writeJSON(w, http.StatusCreated, modeldto.NewStoryView(story, h.app.Index))
	}
}

// HandlePatchStory edits an own story.
func (h *StoryHandler) HandlePatchStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		storyID := chi.URLParam(r, "storyID")
		var req modeldto.RequestStory
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.app.Coordinator.Update(ctx, storyID, req.Fields()); err != nil {
			writeError(w, r, "HandlePatchStory", err)
			return
		}
		story, ok := h.app.Store.Story(storyID)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.NewStoryView(story, h.app.Index))
	}
}

// HandleDeleteStory removes an own story.
func (h *StoryHandler) HandleDeleteStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		storyID := chi.URLParam(r, "storyID")
		if err := h.app.Coordinator.Remove(ctx, storyID); err != nil {
			writeError(w, r, "HandleDeleteStory", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleToggleFavorite flips the favorite state of a known story.
func (h *StoryHandler) HandleToggleFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		storyID := chi.URLParam(r, "storyID")
		story, ok := h.app.Store.Story(storyID)
		if !ok {
			writeError(w, r, "HandleToggleFavorite", &serviceErrors.NotFoundError{StoryID: storyID})
			return
		}
		favorite, err := h.app.Coordinator.ToggleFavorite(ctx, story)
		if err != nil {
			writeError(w, r, "HandleToggleFavorite", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseFavorite{StoryID: storyID, Favorite: favorite})
	}
}

// HandleRefresh reloads every collection from the remote API.
func (h *StoryHandler) HandleRefresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		if err := h.app.Coordinator.Refresh(ctx); err != nil {
			writeError(w, r, "HandleRefresh", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.NewStoryViews(h.app.Store.Stories(), h.app.Index))
	}
}

// HandleLogin logs a user in.
func (h *StoryHandler) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		var req modeldto.RequestLogin
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		user, err := h.app.Login(ctx, req.Username, req.Password)
		h.writeUser(w, r, "HandleLogin", user, err)
	}
}

// HandleSignup creates a user and logs them in.
func (h *StoryHandler) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		var req modeldto.RequestSignup
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		user, err := h.app.Signup(ctx, req.Name, req.Username, req.Password)
		h.writeUser(w, r, "HandleSignup", user, err)
	}
}

// HandleLogout logs the current user out.
func (h *StoryHandler) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		if err := h.app.Logout(ctx); err != nil {
			writeError(w, r, "HandleLogout", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandlePing reports the dispatcher is up.
func (h *StoryHandler) HandlePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// HandleGetStats reports collection sizes for trusted clients.
func (h *StoryHandler) HandleGetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.app.Stats())
	}
}

func (h *StoryHandler) loggedIn(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := h.app.Session.Current(); ok {
		return true
	}
	writeError(w, r, "loggedIn", &serviceErrors.AuthorizationError{Msg: "login required"})
	return false
}

func (h *StoryHandler) writeUser(w http.ResponseWriter, r *http.Request, op string, user modelstory.User, err error) {
	var remoteErr *serviceErrors.RemoteError
	switch {
	case err == nil:
	case errors.As(err, &remoteErr) && user.Username != "":
		// logged in but the following refresh failed, the session stays valid
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg(op)
	default:
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, modeldto.NewResponseUser(user))
}

// statusOf maps the service error taxonomy to HTTP status codes.
func statusOf(err error) int {
	var (
		validationErr    *serviceErrors.ValidationError
		authorizationErr *serviceErrors.AuthorizationError
		notFoundErr      *serviceErrors.NotFoundError
		timeoutErr       *serviceErrors.ContextTimeoutExceededError
		remoteErr        *serviceErrors.RemoteError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &authorizationErr):
		return http.StatusForbidden
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &remoteErr):
		if remoteErr.StatusCode == http.StatusUnauthorized {
			return http.StatusUnauthorized
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := statusOf(err)
	zerolog.Ctx(r.Context()).Warn().Err(err).Int("status", code).Msg(op)
	writeJSON(w, code, modeldto.ResponseError{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	resBody, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(resBody)
}
