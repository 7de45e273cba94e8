package main

import (
	"flag"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_story_feed/internal/logger"
)

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func main() {
	a := flag.String("a", "http://localhost:8080", "Story feed dispatcher address")
	n := flag.Int("n", 20, "Iterations per phase")
	flag.Parse()
	log := logger.New("info")

	const ping = "/ping"
	const signup = "/api/signup"
	const stories = "/api/stories"
	const favorites = "/api/user/favorites"
	const refresh = "/api/refresh"
	iterations := *n

	client := resty.New().SetBaseURL(*a)
	client.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
		r.SetHeader(middleware.RequestIDHeader, uuid.New().String())
		return nil
	})

	// Performing ping loading
	log.Info().Msg("Performing ping loading")
	for i := 0; i < iterations; i++ {
		if _, err := client.R().Get(ping); err != nil {
			log.Fatal().Err(err).Msg("ping")
		}
	}

	// Signing up a fresh user
	username := "loader_" + randStringBytes(8)
	res, err := client.R().
		SetBody(modeldto.RequestSignup{Name: username, Username: username, Password: randStringBytes(12)}).
		Post(signup)
	if err != nil {
		log.Fatal().Err(err).Msg("signup")
	}
	if res.StatusCode() != http.StatusOK {
		log.Fatal().Int("status", res.StatusCode()).Msg("signup")
	}
	time.Sleep(1 * time.Second)

	// Performing submit loading
	log.Info().Msg("Performing submit loading")
	var storyIDs []string
	for i := 0; i < iterations; i++ {
		var view modeldto.StoryView
		res, err := client.R().
			SetBody(modeldto.RequestStory{
				Author: username,
				Title:  randStringBytes(16),
				URL:    "https://www." + randStringBytes(10) + ".com",
			}).
			SetResult(&view).
			Post(stories)
		if err != nil {
			log.Fatal().Err(err).Msg("submit")
		}
		if res.StatusCode() == http.StatusCreated {
			storyIDs = append(storyIDs, view.StoryID)
		}
	}
	log.Info().Strs("story_ids", storyIDs).Msg("Submitted")
	time.Sleep(1 * time.Second)

	// Performing favorite toggle loading
	log.Info().Msg("Performing favorite loading")
	for _, id := range storyIDs {
		if _, err := client.R().Post(stories + "/" + id + "/favorite"); err != nil {
			log.Fatal().Err(err).Msg("favorite")
		}
	}
	res, err = client.R().Get(favorites)
	if err != nil {
		log.Fatal().Err(err).Msg("favorites")
	}
	log.Info().Int("status", res.StatusCode()).Int("bytes", len(res.Body())).Msg("Favorites listed")

	// Performing refresh loading
	log.Info().Msg("Performing refresh loading")
	for i := 0; i < iterations; i++ {
		if _, err := client.R().Post(refresh); err != nil {
			log.Fatal().Err(err).Msg("refresh")
		}
	}
	time.Sleep(1 * time.Second)

	// Performing remove loading
	log.Info().Msg("Performing remove loading")
	failed := 0
	for _, id := range storyIDs {
		res, err := client.R().Delete(stories + "/" + id)
		if err != nil {
			log.Fatal().Err(err).Msg("remove")
		}
		if res.StatusCode() != http.StatusNoContent {
			failed++
		}
	}
	log.Info().Int("removed", len(storyIDs)-failed).Msg("Removed")
	if failed > 0 {
		log.Fatal().Int("failed", failed).Msg("Some stories were not removed")
	}
}
