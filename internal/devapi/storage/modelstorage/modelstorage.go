// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

import (
	"time"
)

// StoryEntry is a stored story.
type StoryEntry struct {
	StoryID   string    `db:"story_id"`
	Author    string    `db:"author"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// UserEntry is a stored user, only the bcrypt hash of the password is kept.
type UserEntry struct {
	Username     string    `db:"username"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
