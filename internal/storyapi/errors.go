package storyapi

import (
	"errors"
	"fmt"

	serviceErrors "github.com/danilovkiri/dk_go_story_feed/internal/service/errors"
)

// APIError is returned when the remote story API replies with an error status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewRemoteError wraps a failed call to the remote story API, keeping the reply status when there is one.
func NewRemoteError(op string, err error) error {
	remoteErr := &serviceErrors.RemoteError{Op: op, Err: err}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		remoteErr.StatusCode = apiErr.StatusCode
	}
	return remoteErr
}
