// Package errors provides custom errors for types implementing the development story API Processor.
package errors

import (
	"fmt"
)

type (
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceInitHashError struct {
		Msg string
	}
	ServiceEncodingHashError struct {
		Msg string
	}
	ServiceIncorrectInputError struct {
		Msg string
	}
	ServiceUnauthorizedError struct {
		Msg string
	}
	ServiceForbiddenError struct {
		Msg string
	}
)

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceInitHashError) Error() string {
	return fmt.Sprintf("hash initialization failed: %s", e.Msg)
}

func (e *ServiceEncodingHashError) Error() string {
	return fmt.Sprintf("hash encoding failed: %s", e.Msg)
}

func (e *ServiceIncorrectInputError) Error() string {
	return e.Msg
}

func (e *ServiceUnauthorizedError) Error() string {
	return e.Msg
}

func (e *ServiceForbiddenError) Error() string {
	return e.Msg
}
