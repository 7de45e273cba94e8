package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RemoteError{Op: "create", Err: cause}
	assert.Equal(t, "remote create failed: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))

	err = &RemoteError{Op: "delete", StatusCode: 403, Err: errors.New("Forbidden")}
	assert.Equal(t, "remote delete failed with status 403: Forbidden", err.Error())
}

func TestContextTimeoutExceededError(t *testing.T) {
	err := &ContextTimeoutExceededError{Err: context.DeadlineExceeded}
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "context deadline exceeded: context timeout exceeded", err.Error())
}

func TestAuthorizationError(t *testing.T) {
	assert.Equal(t, "login required", (&AuthorizationError{Msg: "login required"}).Error())
	assert.Equal(t, "s1: story is not owned by current user", (&AuthorizationError{StoryID: "s1", Msg: "story is not owned by current user"}).Error())
}

func TestValidationAndNotFoundErrors(t *testing.T) {
	assert.Equal(t, "invalid title: title must not be empty", (&ValidationError{Field: "title", Msg: "title must not be empty"}).Error())
	assert.Equal(t, "s1: not found locally", (&NotFoundError{StoryID: "s1"}).Error())
}
