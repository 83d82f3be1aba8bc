package bonusservice

import "errors"

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrZeroPoints   = errors.New("bonus points must not be zero")
	ErrEmptyReason  = errors.New("bonus reason is required")
)
