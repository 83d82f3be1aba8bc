package scoringservice

import "errors"

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrCoachNotFound = errors.New("coach not found")
	ErrEventNotFound = errors.New("event not found")
)
