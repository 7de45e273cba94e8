// Package modeldto provides the JSON data transfer objects of the remote story API.
package modeldto

import (
	"time"

	"github.com/danilovkiri/dk_go_story_feed/internal/service/modelstory"
)

type (
	Story struct {
		StoryID   string    `json:"storyId"`
		Title     string    `json:"title"`
		Author    string    `json:"author"`
		URL       string    `json:"url"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"createdAt"`
	}

	StoryFields struct {
		Author string `json:"author,omitempty"`
		Title  string `json:"title,omitempty"`
		URL    string `json:"url,omitempty"`
	}

	User struct {
		Username  string    `json:"username"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"createdAt"`
		Favorites []Story   `json:"favorites"`
		Stories   []Story   `json:"stories"`
	}

	Credentials struct {
		Name     string `json:"name,omitempty"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	RequestToken struct {
		Token string `json:"token"`
	}

	RequestStory struct {
		Token string      `json:"token"`
		Story StoryFields `json:"story"`
	}

	RequestCredentials struct {
		User Credentials `json:"user"`
	}

	ResponseStories struct {
		Stories []Story `json:"stories"`
	}

	ResponseStory struct {
		Message string `json:"message,omitempty"`
		Story   Story  `json:"story"`
	}

	ResponseUser struct {
		Message string `json:"message,omitempty"`
		User    User   `json:"user"`
	}

	ResponseAuth struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	ErrorDetail struct {
		Status  int    `json:"status"`
		Title   string `json:"title"`
		Message string `json:"message"`
	}

	ResponseError struct {
		Error ErrorDetail `json:"error"`
	}
)

// ToModel converts a transferred story into the local model.
func (s Story) ToModel() modelstory.Story {
	return modelstory.Story{
		StoryID:   s.StoryID,
		Author:    s.Author,
		Title:     s.Title,
		URL:       s.URL,
		Username:  s.Username,
		CreatedAt: s.CreatedAt,
	}
}

// FromStory converts a local story into its transfer form.
func FromStory(s modelstory.Story) Story {
	return Story{
		StoryID:   s.StoryID,
		Title:     s.Title,
		Author:    s.Author,
		URL:       s.URL,
		Username:  s.Username,
		CreatedAt: s.CreatedAt,
	}
}

// FromFields converts local story fields into their transfer form.
func FromFields(f modelstory.StoryFields) StoryFields {
	return StoryFields{Author: f.Author, Title: f.Title, URL: f.URL}
}

// ToModel converts transferred story fields into the local model.
func (f StoryFields) ToModel() modelstory.StoryFields {
	return modelstory.StoryFields{Author: f.Author, Title: f.Title, URL: f.URL}
}

// ToModel converts a transferred user into the local model.
func (u User) ToModel() modelstory.User {
	return modelstory.User{
		Username:   u.Username,
		Name:       u.Name,
		CreatedAt:  u.CreatedAt,
		OwnStories: StoriesToModel(u.Stories),
		Favorites:  StoriesToModel(u.Favorites),
	}
}

// StoriesToModel converts a slice of transferred stories.
func StoriesToModel(stories []Story) []modelstory.Story {
	res := make([]modelstory.Story, 0, len(stories))
	for _, s := range stories {
		res = append(res, s.ToModel())
	}
	return res
}
