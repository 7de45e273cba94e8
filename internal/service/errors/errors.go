// Package errors provides custom errors for types implementing Coordinator, Manager and their dependencies.
package errors

import (
	"fmt"
)

type (
	// ValidationError is returned for malformed story fields, it is detected before any remote call.
	ValidationError struct {
		Field string
		Msg   string
	}
	// AuthorizationError is returned when an action targets a story not owned by the current user
	// or requires a session while logged out.
	AuthorizationError struct {
		StoryID string
		Msg     string
	}
	// RemoteError is returned when a remote story API call fails or replies with an error status.
	RemoteError struct {
		Op         string
		StatusCode int
		Err        error
	}
	// NotFoundError is returned when a mutation target is no longer present locally.
	NotFoundError struct {
		StoryID string
	}
	// ContextTimeoutExceededError is returned when a context expires while an action waits for its turn.
	ContextTimeoutExceededError struct {
		Err error
	}
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilAPI struct {
		Msg string
	}
	ServiceFoundNilSession struct {
		Msg string
	}
)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func (e *AuthorizationError) Error() string {
	if e.StoryID == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.StoryID, e.Msg)
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote %s failed with status %d: %s", e.Op, e.StatusCode, e.Err.Error())
	}
	return fmt.Sprintf("remote %s failed: %s", e.Op, e.Err.Error())
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found locally", e.StoryID)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilAPI) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilSession) Error() string {
	return e.Msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}
