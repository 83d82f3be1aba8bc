package eventservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
	"github.com/uptrace/bun"
)

type (
	attendanceResult = results.OperationResult[eventdomain.AttendanceRecord, error]
	batchResult      = results.OperationResult[BatchResult, error]
)

// RecordAttendance records one attendee at one event, replacing any earlier
// row for the same attendee. Points are stamped from the event as it is now.
func (s *EventService) RecordAttendance(ctx context.Context, grant authdomain.Grant, input RecordAttendanceInput) (eventdomain.AttendanceRecord, error) {
	input.Attendee.CoachName = strings.TrimSpace(input.Attendee.CoachName)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "RecordAttendance", strconv.FormatInt(input.EventID, 10),
		func(ctx context.Context) (attendanceResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[eventdomain.AttendanceRecord](err), nil
			}
			if err := input.Attendee.Validate(); err != nil {
				return results.FailureResult[eventdomain.AttendanceRecord](err), nil
			}
			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (attendanceResult, error) {
				event, err := s.loadActiveEvent(ctx, db, input.EventID)
				if err != nil {
					return failOrAbort[eventdomain.AttendanceRecord](err)
				}

				row, err := s.writeAttendance(ctx, db, grant, event, input)
				if err != nil {
					return failOrAbort[eventdomain.AttendanceRecord](err)
				}

				details := map[string]any{
					"attended":      row.Attended,
					"points_earned": row.PointsEarned,
					"sessions":      row.Sessions,
				}
				if row.MemberID != nil {
					details["member_id"] = *row.MemberID
				} else {
					details["coach_name"] = *row.CoachName
				}
				if err := s.audit.Record(ctx, db, auditdomain.Entry{
					Action:   auditdomain.ActionRecordAttendance,
					Entity:   "event",
					EntityID: strconv.FormatInt(event.ID, 10),
					Actor:    grant.Subject,
					Details:  details,
				}); err != nil {
					return attendanceResult{}, err
				}
				return results.SuccessResult[eventdomain.AttendanceRecord, error](toAttendance(row)), nil
			})
		})
	return operation.Unwrap(result, err)
}

// RecordMemberAttendance records many members at once. Either every row is
// written or none is.
func (s *EventService) RecordMemberAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, attended map[int64]bool) (BatchResult, error) {
	return s.recordBatch(ctx, grant, "RecordMemberAttendance", eventID, memberInputs(eventID, attended))
}

// RecordCoachAttendance records coaches by session count. A positive count
// means the coach attended that many sessions.
func (s *EventService) RecordCoachAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, sessions map[string]int) (BatchResult, error) {
	return s.recordBatch(ctx, grant, "RecordCoachAttendance", eventID, coachInputs(eventID, sessions))
}

// RecordBatch records members and coaches in one transaction. A rejected
// entry on either side leaves nothing written.
func (s *EventService) RecordBatch(ctx context.Context, grant authdomain.Grant, eventID int64, batch BatchInput) (BatchResult, error) {
	inputs := append(memberInputs(eventID, batch.Members), coachInputs(eventID, batch.Coaches)...)
	return s.recordBatch(ctx, grant, "RecordBatch", eventID, inputs)
}

// memberInputs orders members by id so batches write deterministically.
func memberInputs(eventID int64, attended map[int64]bool) []RecordAttendanceInput {
	ids := make([]int64, 0, len(attended))
	for id := range attended {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	inputs := make([]RecordAttendanceInput, 0, len(ids))
	for _, id := range ids {
		inputs = append(inputs, RecordAttendanceInput{
			EventID:  eventID,
			Attendee: eventdomain.Attendee{MemberID: id},
			Attended: attended[id],
		})
	}
	return inputs
}

func coachInputs(eventID int64, sessions map[string]int) []RecordAttendanceInput {
	names := make([]string, 0, len(sessions))
	for name := range sessions {
		names = append(names, name)
	}
	sort.Strings(names)

	inputs := make([]RecordAttendanceInput, 0, len(names))
	for _, name := range names {
		n := sessions[name]
		inputs = append(inputs, RecordAttendanceInput{
			EventID:  eventID,
			Attendee: eventdomain.Attendee{CoachName: strings.TrimSpace(name)},
			Attended: n > 0,
			Sessions: n,
		})
	}
	return inputs
}

func (s *EventService) recordBatch(ctx context.Context, grant authdomain.Grant, op string, eventID int64, inputs []RecordAttendanceInput) (BatchResult, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, op, strconv.FormatInt(eventID, 10),
		func(ctx context.Context) (batchResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[BatchResult](err), nil
			}
			if len(inputs) == 0 {
				return results.FailureResult[BatchResult](ErrEmptyBatch), nil
			}
			for _, in := range inputs {
				if err := in.Attendee.Validate(); err != nil {
					return results.FailureResult[BatchResult](err), nil
				}
			}

			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (batchResult, error) {
				event, err := s.loadActiveEvent(ctx, db, eventID)
				if err != nil {
					return failOrAbort[BatchResult](err)
				}

				out := BatchResult{EventID: eventID}
				for _, in := range inputs {
					row, err := s.writeAttendance(ctx, db, grant, event, in)
					if err != nil {
						return failOrAbort[BatchResult](err)
					}
					out.Recorded++
					if in.Attendee.IsCoach() {
						out.Coaches++
					} else {
						out.Members++
					}
					out.PointsEarned += row.PointsEarned
				}

				if err := s.audit.Record(ctx, db, auditdomain.Entry{
					Action:   auditdomain.ActionRecordAttendance,
					Entity:   "event",
					EntityID: strconv.FormatInt(eventID, 10),
					Actor:    grant.Subject,
					Details: map[string]any{
						"batch":         op,
						"members":       out.Members,
						"coaches":       out.Coaches,
						"points_earned": out.PointsEarned,
					},
				}); err != nil {
					return batchResult{}, err
				}
				return results.SuccessResult[BatchResult, error](out), nil
			})
		})
	return operation.Unwrap(result, err)
}

// loadActiveEvent returns the event. A missing or inactive event is a
// domain failure.
func (s *EventService) loadActiveEvent(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error) {
	event, err := s.repo.GetEvent(ctx, db, id)
	if err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			return nil, fail(fmt.Errorf("%w: %d", ErrEventNotFound, id))
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !event.IsActive {
		return nil, fail(fmt.Errorf("%w: %q", ErrEventInactive, event.Name))
	}
	return event, nil
}

// writeAttendance checks the attendee against the roster and upserts the row.
// An unknown member or coach is a domain failure.
func (s *EventService) writeAttendance(
	ctx context.Context,
	db bun.IDB,
	grant authdomain.Grant,
	event *eventdb.Event,
	in RecordAttendanceInput,
) (*eventdb.Attendance, error) {
	row := &eventdb.Attendance{
		EventID:     event.ID,
		Attended:    in.Attended,
		Sessions:    eventdomain.NormalizeSessions(in.Sessions),
		SessionType: strings.TrimSpace(in.SessionType),
		Notes:       strings.TrimSpace(in.Notes),
		RecordedBy:  grant.Subject,
		RecordedAt:  s.clock.Now().UTC(),
	}
	if row.SessionType == "" {
		row.SessionType = eventdomain.DefaultSessionType
	}

	if in.Attendee.IsCoach() {
		name, err := s.resolveCoach(ctx, db, in.Attendee.CoachName)
		if err != nil {
			return nil, err
		}
		row.CoachName = &name
	} else {
		if _, err := s.roster.GetMember(ctx, db, in.Attendee.MemberID); err != nil {
			if errors.Is(err, rosterdb.ErrNotFound) {
				return nil, fail(fmt.Errorf("%w: %d", ErrMemberNotFound, in.Attendee.MemberID))
			}
			return nil, fmt.Errorf("failed to get member: %w", err)
		}
		id := in.Attendee.MemberID
		row.MemberID = &id
	}

	row.PointsEarned = eventdomain.PointsFor(toEvent(event), in.Attendee, row.Attended, row.Sessions)

	if err := s.repo.UpsertAttendance(ctx, db, row); err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			return nil, fail(fmt.Errorf("%w: %d", ErrMemberNotFound, in.Attendee.MemberID))
		}
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}

	s.logger.DebugContext(ctx, "Attendance recorded",
		attr.Int64("event_id", event.ID),
		attr.Bool("attended", row.Attended),
		attr.Int("points_earned", row.PointsEarned),
	)
	return row, nil
}

// resolveCoach accepts a name from the coaches table or any team's coach_name.
func (s *EventService) resolveCoach(ctx context.Context, db bun.IDB, name string) (string, error) {
	coach, err := s.roster.GetCoachByName(ctx, db, name)
	switch {
	case err == nil:
		return coach.Name, nil
	case !errors.Is(err, rosterdb.ErrNotFound):
		return "", fmt.Errorf("failed to get coach: %w", err)
	}

	teams, err := s.roster.ListTeamsByCoach(ctx, db, name)
	if err != nil {
		return "", fmt.Errorf("failed to list coach teams: %w", err)
	}
	if len(teams) == 0 {
		return "", fail(fmt.Errorf("%w: %q", ErrCoachNotFound, name))
	}
	return teams[0].CoachName, nil
}
