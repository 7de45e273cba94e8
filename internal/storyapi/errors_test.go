package storyapi

import (
	"context"
	"errors"
	"fmt"
	"testing"

	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewRemoteError(t *testing.T) {
	apiErr := &APIError{StatusCode: 403, Message: "Forbidden"}
	err := NewRemoteError("delete", fmt.Errorf("request: %w", apiErr))
	var remoteErr *serviceErrors.RemoteError
	assert.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, 403, remoteErr.StatusCode)
	assert.Equal(t, "delete", remoteErr.Op)
	assert.True(t, errors.Is(err, apiErr))

	err = NewRemoteError("create", context.DeadlineExceeded)
	assert.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, 0, remoteErr.StatusCode)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
