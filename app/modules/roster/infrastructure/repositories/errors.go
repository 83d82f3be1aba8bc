package rosterdb

import "errors"

var (
	// ErrNotFound is returned when a team, member or coach does not exist.
	ErrNotFound = errors.New("roster record not found")
	// ErrDuplicate is returned when a unique name is already taken.
	ErrDuplicate = errors.New("roster record already exists")
)
