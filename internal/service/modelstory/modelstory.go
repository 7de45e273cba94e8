// Package modelstory provides locally used types and their structure for story handling between modules.
package modelstory

import (
	"net/url"
	"strings"
	"time"

	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
)

// Story is a submitted item. StoryID and Username never change after creation.
type Story struct {
	StoryID   string
	Author    string
	Title     string
	URL       string
	Username  string
	CreatedAt time.Time
}

// StoryFields holds the mutable part of a Story.
type StoryFields struct {
	Author string
	Title  string
	URL    string
}

// User holds a logged-in user together with the stories they posted and favorited.
type User struct {
	Username   string
	Name       string
	CreatedAt  time.Time
	OwnStories []Story
	Favorites  []Story
}

// Fields returns the mutable part of a story.
func (s Story) Fields() StoryFields {
	return StoryFields{Author: s.Author, Title: s.Title, URL: s.URL}
}

// Apply overwrites the mutable fields of a story keeping its identity.
func (s *Story) Apply(fields StoryFields) {
	s.Author = fields.Author
	s.Title = fields.Title
	s.URL = fields.URL
}

// HostName returns the host part of the story URL or an empty string if URL cannot be parsed.
func (s Story) HostName() string {
	u, err := url.Parse(s.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Validate checks that a story can be submitted with these fields.
func (f StoryFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &serviceErrors.ValidationError{Field: "title", Msg: "title must not be empty"}
	}
	if strings.TrimSpace(f.URL) == "" {
		return &serviceErrors.ValidationError{Field: "url", Msg: "url must not be empty"}
	}
	u, err := url.ParseRequestURI(f.URL)
	if err != nil {
		return &serviceErrors.ValidationError{Field: "url", Msg: err.Error()}
	}
	if u.Host == "" {
		return &serviceErrors.ValidationError{Field: "url", Msg: "url must contain a host"}
	}
	return nil
}
