// Package handlers provides http.HandlerFunc handler functions for the development story API endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/service"
	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/devapi/service/errors"
	storageErrors "github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/modelstorage"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi/modeldto"
)

// DefaultLimit is the page size used when a listing does not ask for one.
const DefaultLimit = 25

// APIHandler defines data structure handling and provides support for adding new implementations.
type APIHandler struct {
	processor service.Processor
	timeout   time.Duration
	log       zerolog.Logger
}

// InitAPIHandler initializes an APIHandler object and sets its attributes.
func InitAPIHandler(processor service.Processor, timeout time.Duration, log zerolog.Logger) (*APIHandler, error) {
	if processor == nil {
		return nil, fmt.Errorf("nil Processor was passed to API Handler initializer")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &APIHandler{processor: processor, timeout: timeout, log: log}, nil
}

// HandleListStories returns a page of stories, newest first.
func (h *APIHandler) HandleListStories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		skip, err := queryInt(r, "skip", 0)
		if err != nil {
			h.writeError(w, "HandleListStories", err)
			return
		}
		limit, err := queryInt(r, "limit", DefaultLimit)
		if err != nil {
			h.writeError(w, "HandleListStories", err)
			return
		}
		stories, err := h.processor.ListStories(ctx, skip, limit)
		if err != nil {
			h.writeError(w, "HandleListStories", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseStories{Stories: fromEntries(stories)})
	}
}

// HandleGetStory returns one story.
func (h *APIHandler) HandleGetStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		story, err := h.processor.GetStory(ctx, chi.URLParam(r, "storyID"))
		if err != nil {
			h.writeError(w, "HandleGetStory", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseStory{Story: fromEntry(story)})
	}
}

// HandlePostStory stores a story posted by the token holder.
func (h *APIHandler) HandlePostStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		var req modeldto.RequestStory
		if err := decode(r, &req); err != nil {
			h.writeError(w, "HandlePostStory", err)
			return
		}
		story, err := h.processor.CreateStory(ctx, req.Token, toInput(req.Story))
		if err != nil {
			h.writeError(w, "HandlePostStory", err)
			return
		}
		writeJSON(w, http.StatusCreated, modeldto.ResponseStory{Story: fromEntry(story)})
	}
}

// HandlePatchStory updates an own story.
func (h *APIHandler) HandlePatchStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		var req modeldto.RequestStory
		if err := decode(r, &req); err != nil {
			h.writeError(w, "HandlePatchStory", err)
			return
		}
		story, err := h.processor.UpdateStory(ctx, req.Token, chi.URLParam(r, "storyID"), toInput(req.Story))
		if err != nil {
			h.writeError(w, "HandlePatchStory", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseStory{Story: fromEntry(story)})
	}
}

// HandleDeleteStory removes an own story.
func (h *APIHandler) HandleDeleteStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		token, err := tokenOf(r)
		if err != nil {
			h.writeError(w, "HandleDeleteStory", err)
			return
		}
		story, err := h.processor.DeleteStory(ctx, token, chi.URLParam(r, "storyID"))
		if err != nil {
			h.writeError(w, "HandleDeleteStory", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseStory{Message: "Deleted story", Story: fromEntry(story)})
	}
}

// HandleAddFavorite marks a story as a favorite of the token holder.
func (h *APIHandler) HandleAddFavorite() http.HandlerFunc {
	return h.handleFavorite("HandleAddFavorite", "Favorite added", h.processor.AddFavorite)
}

// HandleRemoveFavorite unmarks a story as a favorite of the token holder.
func (h *APIHandler) HandleRemoveFavorite() http.HandlerFunc {
	return h.handleFavorite("HandleRemoveFavorite", "Favorite removed", h.processor.RemoveFavorite)
}

// HandleGetUser returns the profile of the token holder.
func (h *APIHandler) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		profile, err := h.processor.GetProfile(ctx, r.URL.Query().Get("token"), chi.URLParam(r, "username"))
		if err != nil {
			h.writeError(w, "HandleGetUser", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseUser{User: fromProfile(profile)})
	}
}

// HandleLogin exchanges credentials for a token.
func (h *APIHandler) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		var req modeldto.RequestCredentials
		if err := decode(r, &req); err != nil {
			h.writeError(w, "HandleLogin", err)
			return
		}
		token, profile, err := h.processor.Login(ctx, req.User.Username, req.User.Password)
		if err != nil {
			h.writeError(w, "HandleLogin", err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseAuth{Token: token, User: fromProfile(profile)})
	}
}

// HandleSignup creates a user and returns a token for them.
func (h *APIHandler) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		var req modeldto.RequestCredentials
		if err := decode(r, &req); err != nil {
			h.writeError(w, "HandleSignup", err)
			return
		}
		token, profile, err := h.processor.Signup(ctx, req.User.Name, req.User.Username, req.User.Password)
		if err != nil {
			h.writeError(w, "HandleSignup", err)
			return
		}
		writeJSON(w, http.StatusCreated, modeldto.ResponseAuth{Token: token, User: fromProfile(profile)})
	}
}

// HandlePingDB checks the storage connection.
func (h *APIHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.processor.PingDB(); err != nil {
			h.writeError(w, "HandlePingDB", err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

type favoriteFunc func(ctx context.Context, token, username, storyID string) (service.Profile, error)

func (h *APIHandler) handleFavorite(op, message string, fn favoriteFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		token, err := tokenOf(r)
		if err != nil {
			h.writeError(w, op, err)
			return
		}
		profile, err := fn(ctx, token, chi.URLParam(r, "username"), chi.URLParam(r, "storyID"))
		if err != nil {
			h.writeError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseUser{Message: message, User: fromProfile(profile)})
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, op string, err error) {
	code := statusOf(err)
	h.log.Warn().Err(err).Int("status", code).Msg(op)
	writeJSON(w, code, modeldto.ResponseError{Error: modeldto.ErrorDetail{
		Status:  code,
		Title:   http.StatusText(code),
		Message: err.Error(),
	}})
}

// statusOf maps processor and storage errors to HTTP status codes.
func statusOf(err error) int {
	var (
		incorrectErr    *serviceErrors.ServiceIncorrectInputError
		unauthorizedErr *serviceErrors.ServiceUnauthorizedError
		forbiddenErr    *serviceErrors.ServiceForbiddenError
	)
	switch {
	case errors.As(err, &incorrectErr):
		return http.StatusBadRequest
	case errors.As(err, &unauthorizedErr):
		return http.StatusUnauthorized
	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	case errors.As(err, &storageErrors.StorageNotFoundError{}):
		return http.StatusNotFound
	case errors.As(err, &storageErrors.StorageAlreadyExistsError{}):
		return http.StatusConflict
	case errors.As(err, &storageErrors.ContextTimeoutExceededError{}), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &serviceErrors.ServiceIncorrectInputError{Msg: "malformed JSON body: " + err.Error()}
	}
	return nil
}

// tokenOf reads the token from the JSON body and falls back to the query string.
func tokenOf(r *http.Request) (string, error) {
	var req modeldto.RequestToken
	if r.ContentLength != 0 && r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", &serviceErrors.ServiceIncorrectInputError{Msg: "malformed JSON body: " + err.Error()}
		}
	}
	if req.Token == "" {
		req.Token = r.URL.Query().Get("token")
	}
	return req.Token, nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &serviceErrors.ServiceIncorrectInputError{Msg: key + " must be an integer"}
	}
	return n, nil
}

func toInput(fields modeldto.StoryFields) service.StoryInput {
	return service.StoryInput{Author: fields.Author, Title: fields.Title, URL: fields.URL}
}

func fromEntry(entry modelstorage.StoryEntry) modeldto.Story {
	return modeldto.Story{
		StoryID:   entry.StoryID,
		Title:     entry.Title,
		Author:    entry.Author,
		URL:       entry.URL,
		Username:  entry.Username,
		CreatedAt: entry.CreatedAt,
	}
}

func fromEntries(entries []modelstorage.StoryEntry) []modeldto.Story {
	res := make([]modeldto.Story, 0, len(entries))
	for _, entry := range entries {
		res = append(res, fromEntry(entry))
	}
	return res
}

func fromProfile(profile service.Profile) modeldto.User {
	return modeldto.User{
		Username:  profile.User.Username,
		Name:      profile.User.Name,
		CreatedAt: profile.User.CreatedAt,
		Stories:   fromEntries(profile.Stories),
		Favorites: fromEntries(profile.Favorites),
	}
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
