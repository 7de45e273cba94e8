// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

import (
	"time"

	"github.com/danilovkiri/dk_go_story_feed/internal/service/membership"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
)

type (
	// StoryView is a story as rendered in a list, together with the affordances that apply to it.
	StoryView struct {
		StoryID   string    `json:"storyId"`
		Title     string    `json:"title"`
		Author    string    `json:"author"`
		URL       string    `json:"url"`
		HostName  string    `json:"hostName"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"createdAt"`
		Favorite  bool      `json:"favorite"`
		Own       bool      `json:"own"`
	}

	RequestStory struct {
		Author string `json:"author"`
		Title  string `json:"title"`
		URL    string `json:"url"`
	}

	RequestLogin struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	RequestSignup struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	ResponseFavorite struct {
		StoryID  string `json:"storyId"`
		Favorite bool   `json:"favorite"`
	}

	ResponseUser struct {
		Username  string    `json:"username"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"createdAt"`
	}

	ResponseError struct {
		Error string `json:"error"`
	}
)

// Fields converts the request body into story fields.
func (r RequestStory) Fields() modelstory.StoryFields {
	return modelstory.StoryFields{Author: r.Author, Title: r.Title, URL: r.URL}
}

// NewStoryView renders a story with its favorite and own flags.
func NewStoryView(story modelstory.Story, checker membership.Checker) StoryView {
	return StoryView{
		StoryID:   story.StoryID,
		Title:     story.Title,
		Author:    story.Author,
		URL:       story.URL,
		HostName:  story.HostName(),
		Username:  story.Username,
		CreatedAt: story.CreatedAt,
		Favorite:  checker.IsFavorite(story.StoryID),
		Own:       checker.IsOwnStory(story.StoryID),
	}
}

// NewStoryViews renders a list of stories keeping its order.
func NewStoryViews(stories []modelstory.Story, checker membership.Checker) []StoryView {
	views := make([]StoryView, 0, len(stories))
	for _, story := range stories {
		views = append(views, NewStoryView(story, checker))
	}
	return views
}

// NewResponseUser converts a user into its response form.
func NewResponseUser(user modelstory.User) ResponseUser {
	return ResponseUser{Username: user.Username, Name: user.Name, CreatedAt: user.CreatedAt}
}
