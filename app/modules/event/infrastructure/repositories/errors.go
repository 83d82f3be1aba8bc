package eventdb

import "errors"

var (
	// ErrNotFound is returned when an event does not exist.
	ErrNotFound = errors.New("event not found")
	// ErrDuplicate is returned when an event name is already taken.
	ErrDuplicate = errors.New("event already exists")
)
