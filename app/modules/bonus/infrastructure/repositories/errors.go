package bonusdb

import "errors"

// ErrTeamNotFound is returned when an award references a missing team.
var ErrTeamNotFound = errors.New("team not found")
