// Package inpsql provides a PostgreSQL storage for the development story API.
package inpsql

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage"
	storageErrors "github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/errors"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.Storage = (*Storage)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	username text PRIMARY KEY,
	name text NOT NULL,
	password_hash text NOT NULL,
	created_at timestamptz NOT NULL
);
CREATE TABLE IF NOT EXISTS stories (
	id bigserial NOT NULL,
	story_id text NOT NULL UNIQUE,
	author text NOT NULL,
	title text NOT NULL,
	url text NOT NULL,
	username text NOT NULL REFERENCES users (username),
	created_at timestamptz NOT NULL
);
CREATE TABLE IF NOT EXISTS favorites (
	id bigserial NOT NULL,
	username text NOT NULL REFERENCES users (username),
	story_id text NOT NULL REFERENCES stories (story_id) ON DELETE CASCADE,
	PRIMARY KEY (username, story_id)
);`

const storyColumns = "story_id, author, title, url, username, created_at"

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	DB  *sqlx.DB
	log zerolog.Logger
}

// InitStorage initializes a Storage object, creates the schema and closes the connection once ctx is done.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	db, err := sqlx.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	st := &Storage{DB: db, log: log}
	if err := st.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.DB.Close(); err != nil {
			log.Error().Err(err).Msg("PSQL DB connection could not be closed")
			return
		}
		log.Info().Msg("PSQL DB connection closed successfully")
	}()
	return st, nil
}

// CreateUser stores a new user.
func (s *Storage) CreateUser(ctx context.Context, user modelstorage.UserEntry) error {
	query := "INSERT INTO users (username, name, password_hash, created_at) VALUES (:username, :name, :password_hash, :created_at)"
	_, err := s.DB.NamedExecContext(ctx, query, user)
	return s.mapError(ctx, "CreateUser", user.Username, err)
}

// GetUser retrieves a user by username.
func (s *Storage) GetUser(ctx context.Context, username string) (modelstorage.UserEntry, error) {
	var user modelstorage.UserEntry
	err := s.DB.GetContext(ctx, &user, "SELECT username, name, password_hash, created_at FROM users WHERE username = $1", username)
	return user, s.mapError(ctx, "GetUser", username, err)
}

// CreateStory stores a new story.
func (s *Storage) CreateStory(ctx context.Context, story modelstorage.StoryEntry) error {
	query := "INSERT INTO stories (" + storyColumns + ") VALUES (:story_id, :author, :title, :url, :username, :created_at)"
	_, err := s.DB.NamedExecContext(ctx, query, story)
	return s.mapError(ctx, "CreateStory", story.StoryID, err)
}

// GetStory retrieves a story by ID.
func (s *Storage) GetStory(ctx context.Context, storyID string) (modelstorage.StoryEntry, error) {
	var story modelstorage.StoryEntry
	err := s.DB.GetContext(ctx, &story, "SELECT "+storyColumns+" FROM stories WHERE story_id = $1", storyID)
	return story, s.mapError(ctx, "GetStory", storyID, err)
}

// ListStories returns a page of stories, newest first.
func (s *Storage) ListStories(ctx context.Context, skip, limit int) ([]modelstorage.StoryEntry, error) {
	var stories []modelstorage.StoryEntry
	query := "SELECT " + storyColumns + " FROM stories ORDER BY id DESC OFFSET $1 LIMIT $2"
	err := s.DB.SelectContext(ctx, &stories, query, skip, limit)
	return stories, s.mapError(ctx, "ListStories", "", err)
}

// ListStoriesByUser returns the stories posted by a user, newest first.
func (s *Storage) ListStoriesByUser(ctx context.Context, username string) ([]modelstorage.StoryEntry, error) {
	var stories []modelstorage.StoryEntry
	query := "SELECT " + storyColumns + " FROM stories WHERE username = $1 ORDER BY id DESC"
	err := s.DB.SelectContext(ctx, &stories, query, username)
	return stories, s.mapError(ctx, "ListStoriesByUser", username, err)
}

// UpdateStory overwrites the mutable fields of a story.
func (s *Storage) UpdateStory(ctx context.Context, story modelstorage.StoryEntry) error {
	query := "UPDATE stories SET author = :author, title = :title, url = :url WHERE story_id = :story_id"
	res, err := s.DB.NamedExecContext(ctx, query, story)
	if err != nil {
		return s.mapError(ctx, "UpdateStory", story.StoryID, err)
	}
	return s.affected(res, story.StoryID)
}

// DeleteStory removes a story, favorites referencing it are removed by the schema.
func (s *Storage) DeleteStory(ctx context.Context, storyID string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM stories WHERE story_id = $1", storyID)
	if err != nil {
		return s.mapError(ctx, "DeleteStory", storyID, err)
	}
	return s.affected(res, storyID)
}

// AddFavorite appends a story to the favorites of a user, adding it twice is a no-op.
func (s *Storage) AddFavorite(ctx context.Context, username, storyID string) error {
	query := "INSERT INTO favorites (username, story_id) VALUES ($1, $2) ON CONFLICT DO NOTHING"
	_, err := s.DB.ExecContext(ctx, query, username, storyID)
	return s.mapError(ctx, "AddFavorite", storyID, err)
}

// RemoveFavorite drops a story from the favorites of a user.
func (s *Storage) RemoveFavorite(ctx context.Context, username, storyID string) error {
	if _, err := s.GetStory(ctx, storyID); err != nil {
		return err
	}
	_, err := s.DB.ExecContext(ctx, "DELETE FROM favorites WHERE username = $1 AND story_id = $2", username, storyID)
	return s.mapError(ctx, "RemoveFavorite", storyID, err)
}

// ListFavorites returns the favorites of a user in the order they were added.
func (s *Storage) ListFavorites(ctx context.Context, username string) ([]modelstorage.StoryEntry, error) {
	var stories []modelstorage.StoryEntry
	query := `SELECT s.story_id, s.author, s.title, s.url, s.username, s.created_at
		FROM favorites f JOIN stories s ON s.story_id = f.story_id
		WHERE f.username = $1 ORDER BY f.id`
	err := s.DB.SelectContext(ctx, &stories, query, username)
	return stories, s.mapError(ctx, "ListFavorites", username, err)
}

// PingDB checks the connection to the PSQL DB.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the connection to the PSQL DB.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

// createTables creates the tables for PSQL DB storage if not exist.
func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, schema)
	return err
}

func (s *Storage) affected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storageErrors.StorageNotFoundError{ID: id}
	}
	return nil
}

func (s *Storage) mapError(ctx context.Context, op string, id string, err error) error {
	if err == nil {
		return nil
	}
	mapped := translateError(ctx, id, err)
	s.log.Debug().Err(err).Str("op", op).Str("id", id).Msg("PSQL query failed")
	return mapped
}

// translateError maps driver errors onto the storage error types.
func translateError(ctx context.Context, id string, err error) error {
	if ctx.Err() != nil {
		return storageErrors.ContextTimeoutExceededError{}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storageErrors.StorageNotFoundError{ID: id}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return storageErrors.StorageAlreadyExistsError{ID: id}
		case pgerrcode.ForeignKeyViolation:
			return storageErrors.StorageNotFoundError{ID: id}
		}
	}
	return err
}
