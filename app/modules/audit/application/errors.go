package auditservice

import "errors"

// ErrInvalidEntry is returned when an entry lacks an action, entity or actor.
var ErrInvalidEntry = errors.New("audit entry requires action, entity and actor")
