package operation

import "errors"

var (
	errRolledBack  = errors.New("operation rejected, transaction rolled back")
	errEmptyResult = errors.New("operation returned neither result nor failure")
)
