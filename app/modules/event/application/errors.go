package eventservice

import (
	"errors"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"

	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
	eventtime "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/time_utils"
)

var (
	ErrEventExists      = errors.New("event already exists")
	ErrEventNotFound    = errors.New("event not found")
	ErrEventInactive    = errors.New("event is inactive")
	ErrMemberNotFound   = errors.New("member not found")
	ErrCoachNotFound    = errors.New("coach not found")
	ErrInvalidEventName = errors.New("event name is required")
	ErrInvalidPoints    = errors.New("point values must not be negative")
	ErrInvalidEventType = errors.New("unknown event type")
	ErrEmptyPatch       = errors.New("no fields to update")
	ErrEmptyBatch       = errors.New("no attendance entries given")
	ErrInvalidUpload    = errors.New("invalid attendance upload")

	ErrInvalidAttendee = eventdomain.ErrInvalidAttendee
	ErrInvalidDate     = eventtime.ErrInvalidDate
)

// failureError marks a domain failure raised inside a transaction. It is
// reported to the caller as an operation failure instead of aborting with
// an infrastructure error.
type failureError struct{ err error }

func (e *failureError) Error() string { return e.err.Error() }
func (e *failureError) Unwrap() error { return e.err }

func fail(err error) error { return &failureError{err: err} }

// domainFailure returns the domain failure carried by err, or nil.
func domainFailure(err error) error {
	var f *failureError
	if errors.As(err, &f) {
		return f.err
	}
	return nil
}

// failOrAbort turns err into a failure result when it carries a domain
// failure and passes it through as an infrastructure error otherwise.
func failOrAbort[S any](err error) (results.OperationResult[S, error], error) {
	if f := domainFailure(err); f != nil {
		return results.FailureResult[S](f), nil
	}
	return results.OperationResult[S, error]{}, err
}
