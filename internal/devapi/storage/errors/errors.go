// Package errors provides custom errors for types implementing the development story API Storage interface.
package errors

import (
	"fmt"
)

type (
	StorageNotFoundError struct {
		ID string
	}
	StorageAlreadyExistsError struct {
		ID string
	}
	ContextTimeoutExceededError struct {
	}
	StatementPSQLError struct {
		Msg string
	}
)

func (e StorageNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in storage", e.ID)
}

func (e StorageAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.ID)
}

func (e ContextTimeoutExceededError) Error() string {
	return "context timeout exceeded"
}

func (e StatementPSQLError) Error() string {
	return fmt.Sprintf("%s could not compile", e.Msg)
}
