package services

import (
	"errors"
)

var (
	// ErrPostNotFound is returned when a post id does not exist. Handlers
	// map it to a 404.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostAuthor is returned when a user tries to mutate a post they
	// did not write. Handlers map it to a 403.
	ErrNotPostAuthor = errors.New("not the post author")
)

// ValidationError carries a user-facing message for bad form input. The
// request is re-rendered with the message instead of failing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
