package eventservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
	"github.com/uptrace/bun"
)

type (
	eventResult       = results.OperationResult[eventdomain.Event, error]
	eventsResult      = results.OperationResult[[]eventdomain.Event, error]
	eventDetailResult = results.OperationResult[eventdomain.EventWithAttendance, error]
)

// CreateEvent creates an active event.
func (s *EventService) CreateEvent(ctx context.Context, grant authdomain.Grant, input CreateEventInput) (eventdomain.Event, error) {
	input.Name = strings.TrimSpace(input.Name)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "CreateEvent", input.Name,
		func(ctx context.Context) (eventResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[eventdomain.Event](err), nil
			}
			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (eventResult, error) {
				return s.createEvent(ctx, db, grant, input)
			})
		})
	return operation.Unwrap(result, err)
}

func (s *EventService) createEvent(ctx context.Context, db bun.IDB, grant authdomain.Grant, input CreateEventInput) (eventResult, error) {
	if input.Name == "" {
		return results.FailureResult[eventdomain.Event](ErrInvalidEventName), nil
	}

	eventType := strings.TrimSpace(input.EventType)
	if eventType == "" {
		eventType = eventdomain.TypeTechSharing
	}
	if !eventdomain.ValidType(eventType) {
		return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %q", ErrInvalidEventType, eventType)), nil
	}

	memberPoints, coachPoints := s.defaults.MemberPoints, s.defaults.CoachPoints
	if input.MemberPoints != nil {
		memberPoints = *input.MemberPoints
	}
	if input.CoachPoints != nil {
		coachPoints = *input.CoachPoints
	}
	if memberPoints < 0 || coachPoints < 0 {
		return results.FailureResult[eventdomain.Event](ErrInvalidPoints), nil
	}

	eventDate, err := s.dates.ParseEventDate(input.EventDate, s.clock)
	if err != nil {
		return results.FailureResult[eventdomain.Event](err), nil
	}

	switch _, err := s.repo.GetEventByName(ctx, db, input.Name); {
	case err == nil:
		return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %q", ErrEventExists, input.Name)), nil
	case !errors.Is(err, eventdb.ErrNotFound):
		return eventResult{}, fmt.Errorf("failed to check event name: %w", err)
	}

	now := s.clock.Now().UTC()
	row := &eventdb.Event{
		Name:         input.Name,
		Description:  strings.TrimSpace(input.Description),
		EventType:    eventType,
		EventDate:    eventDate,
		MemberPoints: memberPoints,
		CoachPoints:  coachPoints,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateEvent(ctx, db, row); err != nil {
		if errors.Is(err, eventdb.ErrDuplicate) {
			return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %q", ErrEventExists, input.Name)), nil
		}
		return eventResult{}, fmt.Errorf("failed to create event: %w", err)
	}

	if err := s.audit.Record(ctx, db, auditdomain.Entry{
		Action:   auditdomain.ActionCreateEvent,
		Entity:   "event",
		EntityID: strconv.FormatInt(row.ID, 10),
		Actor:    grant.Subject,
		Details: map[string]any{
			"name":          row.Name,
			"event_date":    row.EventDate,
			"member_points": row.MemberPoints,
			"coach_points":  row.CoachPoints,
		},
	}); err != nil {
		return eventResult{}, err
	}

	return results.SuccessResult[eventdomain.Event, error](toEvent(row)), nil
}

// UpdateEvent applies an administrative correction. Attendance already
// recorded keeps the points it was stamped with.
func (s *EventService) UpdateEvent(ctx context.Context, grant authdomain.Grant, id int64, patch UpdateEventInput) (eventdomain.Event, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "UpdateEvent", strconv.FormatInt(id, 10),
		func(ctx context.Context) (eventResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[eventdomain.Event](err), nil
			}
			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (eventResult, error) {
				return s.updateEvent(ctx, db, grant, id, patch)
			})
		})
	return operation.Unwrap(result, err)
}

func (s *EventService) updateEvent(ctx context.Context, db bun.IDB, grant authdomain.Grant, id int64, patch UpdateEventInput) (eventResult, error) {
	row, err := s.repo.GetEvent(ctx, db, id)
	if err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %d", ErrEventNotFound, id)), nil
		}
		return eventResult{}, fmt.Errorf("failed to get event: %w", err)
	}

	var columns []string
	changes := map[string]any{}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return results.FailureResult[eventdomain.Event](ErrInvalidEventName), nil
		}
		if name != row.Name {
			row.Name = name
			columns = append(columns, "name")
			changes["name"] = name
		}
	}
	if patch.Description != nil {
		row.Description = strings.TrimSpace(*patch.Description)
		columns = append(columns, "description")
		changes["description"] = row.Description
	}
	if patch.EventType != nil {
		if !eventdomain.ValidType(*patch.EventType) {
			return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %q", ErrInvalidEventType, *patch.EventType)), nil
		}
		row.EventType = *patch.EventType
		columns = append(columns, "event_type")
		changes["event_type"] = row.EventType
	}
	if patch.EventDate != nil {
		d, err := s.dates.ParseEventDate(*patch.EventDate, s.clock)
		if err != nil {
			return results.FailureResult[eventdomain.Event](err), nil
		}
		row.EventDate = d
		columns = append(columns, "event_date")
		changes["event_date"] = d
	}
	if patch.MemberPoints != nil {
		if *patch.MemberPoints < 0 {
			return results.FailureResult[eventdomain.Event](ErrInvalidPoints), nil
		}
		row.MemberPoints = *patch.MemberPoints
		columns = append(columns, "member_points")
		changes["member_points"] = row.MemberPoints
	}
	if patch.CoachPoints != nil {
		if *patch.CoachPoints < 0 {
			return results.FailureResult[eventdomain.Event](ErrInvalidPoints), nil
		}
		row.CoachPoints = *patch.CoachPoints
		columns = append(columns, "coach_points")
		changes["coach_points"] = row.CoachPoints
	}
	if len(columns) == 0 {
		return results.FailureResult[eventdomain.Event](ErrEmptyPatch), nil
	}

	row.UpdatedAt = s.clock.Now().UTC()
	columns = append(columns, "updated_at")

	if err := s.repo.UpdateEvent(ctx, db, row, columns...); err != nil {
		switch {
		case errors.Is(err, eventdb.ErrDuplicate):
			return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %q", ErrEventExists, row.Name)), nil
		case errors.Is(err, eventdb.ErrNotFound):
			return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %d", ErrEventNotFound, id)), nil
		}
		return eventResult{}, fmt.Errorf("failed to update event: %w", err)
	}

	if err := s.audit.Record(ctx, db, auditdomain.Entry{
		Action:   auditdomain.ActionUpdateEvent,
		Entity:   "event",
		EntityID: strconv.FormatInt(row.ID, 10),
		Actor:    grant.Subject,
		Details:  changes,
	}); err != nil {
		return eventResult{}, err
	}

	return results.SuccessResult[eventdomain.Event, error](toEvent(row)), nil
}

// DeactivateEvent soft-deletes an event. Its attendance still counts.
func (s *EventService) DeactivateEvent(ctx context.Context, grant authdomain.Grant, id int64) error {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "DeactivateEvent", strconv.FormatInt(id, 10),
		func(ctx context.Context) (eventResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[eventdomain.Event](err), nil
			}
			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (eventResult, error) {
				row, err := s.repo.GetEvent(ctx, db, id)
				if err != nil {
					if errors.Is(err, eventdb.ErrNotFound) {
						return results.FailureResult[eventdomain.Event](fmt.Errorf("%w: %d", ErrEventNotFound, id)), nil
					}
					return eventResult{}, fmt.Errorf("failed to get event: %w", err)
				}
				row.IsActive = false
				row.UpdatedAt = s.clock.Now().UTC()
				if err := s.repo.UpdateEvent(ctx, db, row, "is_active", "updated_at"); err != nil {
					return eventResult{}, fmt.Errorf("failed to deactivate event: %w", err)
				}
				if err := s.audit.Record(ctx, db, auditdomain.Entry{
					Action:   auditdomain.ActionDeactivateEvent,
					Entity:   "event",
					EntityID: strconv.FormatInt(row.ID, 10),
					Actor:    grant.Subject,
					Details:  map[string]any{"name": row.Name},
				}); err != nil {
					return eventResult{}, err
				}
				return results.SuccessResult[eventdomain.Event, error](toEvent(row)), nil
			})
		})
	_, err = operation.Unwrap(result, err)
	return err
}

// ListEvents returns events ordered by date.
func (s *EventService) ListEvents(ctx context.Context, activeOnly bool) ([]eventdomain.Event, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "ListEvents", strconv.FormatBool(activeOnly),
		func(ctx context.Context) (eventsResult, error) {
			rows, err := s.repo.ListEvents(ctx, nil, activeOnly)
			if err != nil {
				return eventsResult{}, err
			}
			events := make([]eventdomain.Event, 0, len(rows))
			for _, row := range rows {
				events = append(events, toEvent(row))
			}
			return results.SuccessResult[[]eventdomain.Event, error](events), nil
		})
	return operation.Unwrap(result, err)
}

// GetEvent returns an event with its attendance rows.
func (s *EventService) GetEvent(ctx context.Context, id int64) (eventdomain.EventWithAttendance, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "GetEvent", strconv.FormatInt(id, 10),
		func(ctx context.Context) (eventDetailResult, error) {
			row, err := s.repo.GetEvent(ctx, nil, id)
			if err != nil {
				if errors.Is(err, eventdb.ErrNotFound) {
					return results.FailureResult[eventdomain.EventWithAttendance](fmt.Errorf("%w: %d", ErrEventNotFound, id)), nil
				}
				return eventDetailResult{}, err
			}
			rows, err := s.repo.ListAttendance(ctx, nil, id)
			if err != nil {
				return eventDetailResult{}, err
			}
			detail := eventdomain.EventWithAttendance{
				Event:      toEvent(row),
				Attendance: make([]eventdomain.AttendanceRecord, 0, len(rows)),
			}
			for _, a := range rows {
				detail.Attendance = append(detail.Attendance, toAttendance(a))
			}
			return results.SuccessResult[eventdomain.EventWithAttendance, error](detail), nil
		})
	return operation.Unwrap(result, err)
}
