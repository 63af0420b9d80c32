package model

import "errors"

const defaultNotFoundMessage = "The requested resource was not found."

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that no record matched a lookup.
type NotFoundError struct {
	Message string
}

// NewNotFoundError returns a not-found error carrying msg, or the generic
// message when msg is empty.
func NewNotFoundError(msg string) *NotFoundError {
	if msg == "" {
		msg = defaultNotFoundMessage
	}
	return &NotFoundError{Message: msg}
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return defaultNotFoundMessage
	}
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
