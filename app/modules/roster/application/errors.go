package rosterservice

import "errors"

var (
	ErrTeamExists         = errors.New("team already exists")
	ErrTeamNotFound       = errors.New("team not found")
	ErrMemberExists       = errors.New("member already exists in team")
	ErrCoachExists        = errors.New("coach already exists")
	ErrCoachNotFound      = errors.New("coach not found")
	ErrInvalidName        = errors.New("name is required")
	ErrInvalidMemberCount = errors.New("total members must not be negative")
)
